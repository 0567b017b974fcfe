package ner

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"resume-parser/internal/shared/telemetry"
)

// EnsureModel provisions a model artifact into dir at startup.
// It is a no-op when dir is empty, when the directory already exists, or
// when no artifact URL is configured. The artifact is expected to be a
// gzipped tar of the model directory contents.
func EnsureModel(ctx context.Context, dir, artifactURL string) error {
	if dir == "" || artifactURL == "" {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	}

	telemetry.Info("ner.model_download", map[string]any{"dir": dir, "url": artifactURL})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artifactURL, nil)
	if err != nil {
		return fmt.Errorf("build model download request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: download model: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: model download returned %d", ErrModelUnavailable, resp.StatusCode)
	}

	if err := untar(resp.Body, dir); err != nil {
		os.RemoveAll(dir)
		return fmt.Errorf("%w: unpack model: %v", ErrModelUnavailable, err)
	}
	return nil
}

func untar(r io.Reader, dir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dir, filepath.Clean(hdr.Name))
		if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) && target != filepath.Clean(dir) {
			return fmt.Errorf("archive entry escapes model directory: %s", hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
	}
}
