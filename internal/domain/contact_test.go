package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_InteractionStatus_Thresholds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		daysAgo  int
		expected HealthStatus
	}{
		{"ten days ago is good", 10, HealthGood},
		{"fourteen days is still good", 14, HealthGood},
		{"twenty days is warning", 20, HealthWarning},
		{"thirty days is still warning", 30, HealthWarning},
		{"thirty-one days is overdue", 31, HealthOverdue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Contact{
				Name:            "Dana",
				Category:        CategoryColleagues,
				LastInteraction: now.AddDate(0, 0, -tc.daysAgo).Format(time.RFC3339),
			}
			assert.Equal(t, tc.expected, c.InteractionStatus(now))
		})
	}
}

func TestContact_InteractionStatus_MissingDateIsOverdue(t *testing.T) {
	c := Contact{Name: "Dana", Category: CategoryFriends}
	assert.Equal(t, HealthOverdue, c.InteractionStatus(time.Now()))
}

func TestContact_InteractionStatus_PureFunctionOfNow(t *testing.T) {
	c := Contact{LastInteraction: "2025-01-01 10:00"}

	jan11 := time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC)
	feb15 := time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, HealthGood, c.InteractionStatus(jan11))
	assert.Equal(t, HealthOverdue, c.InteractionStatus(feb15))
}

func TestContact_Validate(t *testing.T) {
	valid := Contact{Name: "Dana", Category: CategoryMentors}
	require.NoError(t, valid.Validate())

	noName := Contact{Category: CategoryMentors}
	assert.Error(t, noName.Validate())

	badCategory := Contact{Name: "Dana", Category: "enemies"}
	assert.Error(t, badCategory.Validate())
}

func TestContact_AppendNote(t *testing.T) {
	c := Contact{Name: "Dana", Category: CategoryFriends}

	c.AppendNote("met at conference")
	assert.Equal(t, "met at conference", c.Notes)

	c.AppendNote("followed up by email")
	assert.Equal(t, "met at conference\nfollowed up by email", c.Notes)

	c.AppendNote("   ")
	assert.Equal(t, "met at conference\nfollowed up by email", c.Notes)
}

func TestContact_Matches(t *testing.T) {
	c := Contact{Name: "Dana Whitfield", Email: "dana@example.org", Category: CategoryAlumni}

	assert.True(t, c.Matches(""))
	assert.True(t, c.Matches("whit"))
	assert.True(t, c.Matches("ALUMNI"))
	assert.True(t, c.Matches("example.org"))
	assert.False(t, c.Matches("mentor"))
}
