package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"swasthya/utils"
)

// acquireImage resolves a user-supplied image reference — a base64 data URI,
// an http(s) URL or a local file path — into a data URI for the provider.
// The returned cleanup removes any transient file and must run on every exit
// path; its failures are swallowed.
func acquireImage(ctx context.Context, input string) (string, func(), error) {
	input = strings.TrimSpace(input)
	noop := func() {}

	switch {
	case strings.HasPrefix(input, "data:"):
		if _, _, err := decodeDataURI(input); err != nil {
			return "", noop, fmt.Errorf("could not decode base64 image: %w", err)
		}
		return input, noop, nil

	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		tmpPath, err := downloadToTemp(ctx, input)
		if err != nil {
			return "", noop, fmt.Errorf("could not download image from URL: %w", err)
		}
		cleanup := func() {
			if err := os.Remove(tmpPath); err != nil {
				utils.GetLogger().Warn("Failed to remove temp image", zap.String("path", tmpPath), zap.Error(err))
			}
		}
		uri, err := fileToDataURI(tmpPath)
		if err != nil {
			cleanup()
			return "", noop, fmt.Errorf("could not read downloaded image: %w", err)
		}
		return uri, cleanup, nil

	default:
		localPath := strings.Trim(input, `"'`)
		if _, err := os.Stat(localPath); err != nil {
			return "", noop, fmt.Errorf("could not find image at path %s: please upload an image or provide a valid URL", localPath)
		}
		uri, err := fileToDataURI(localPath)
		if err != nil {
			return "", noop, fmt.Errorf("could not read image file: %w", err)
		}
		return uri, noop, nil
	}
}

// decodeDataURI splits a data URI into its mime type and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	header, encoded, ok := strings.Cut(uri, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, err
	}
	mimeType := strings.TrimPrefix(header, "data:")
	mimeType = strings.TrimSuffix(mimeType, ";base64")
	return mimeType, data, nil
}

// downloadToTemp fetches the URL body into a temp file and returns its path.
func downloadToTemp(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := ocrHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download status %d", resp.StatusCode)
	}

	suffix := path.Ext(url)
	if suffix == "" || len(suffix) > 5 {
		suffix = ".jpg"
	}
	tmp, err := os.CreateTemp("", "report-*"+suffix)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// fileToDataURI reads a file and encodes it as a base64 data URI.
func fileToDataURI(filePath string) (string, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(filePath))
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
