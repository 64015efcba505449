package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// deleteRecord removes base+id after the user confirmed with --yes
func (c *cli) deleteRecord(cmd *cobra.Command, base, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("refusing to delete %s without --yes", id)
	}
	query := url.Values{"confirm": []string{"true"}}
	if err := c.client().request(cmd.Context(), http.MethodDelete, base+url.PathEscape(id), query, nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

// saveDownload writes an attachment to output, or to the file name the
// server suggested
func (c *cli) saveDownload(cmd *cobra.Command, path string, query url.Values, output string) error {
	name, content, err := c.client().download(cmd.Context(), path, query)
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Base(name)
	}
	if output == "" || output == "." || output == "/" {
		return fmt.Errorf("server sent no file name, use --output")
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", output, len(content))
	return nil
}

// upload posts a multipart form. filePath may be empty for a fields-only form.
func (c *apiClient) upload(ctx context.Context, path string, fields map[string]string, filePath string, out any) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := writer.WriteField(k, v); err != nil {
			return err
		}
	}
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer f.Close()
		part, err := writer.CreateFormFile("file", filepath.Base(filePath))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return readAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
