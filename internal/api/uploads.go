package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// uploadResponse is the shape every upload endpoint returns.
type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// UploadDocument attaches a document file to a skill and returns the
// stored file's URL.
func (c *Client) UploadDocument(ctx context.Context, skillID, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, "/api/upload_document", "document", filename, file, map[string]string{
		"skillId": skillID,
	})
}

// UploadCertificate attaches a completion certificate to a skill and
// returns the stored file's URL.
func (c *Client) UploadCertificate(ctx context.Context, skillID, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, "/api/upload_certificate", "certificate", filename, file, map[string]string{
		"skillId": skillID,
	})
}

// UploadAvatar uploads a profile avatar image and returns its URL.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, "/upload_avatar", "avatar", filename, file, nil)
}

// upload performs one multipart POST with a single file part plus optional
// plain form fields.
func (c *Client) upload(ctx context.Context, path, fieldName, filename string, file io.Reader, fields map[string]string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("reading upload file: %w", err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", fmt.Errorf("building upload form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, serverMessage(body))
	}

	var payload uploadResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUnreachable, err)
	}
	if !payload.Success && payload.URL == "" {
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		return "", statusError(resp.StatusCode, msg)
	}
	return payload.URL, nil
}
