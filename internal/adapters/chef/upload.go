package chef

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"net/url"
	"os"

	gochef "github.com/go-chef/chef"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type sandboxRequest struct {
	Checksums map[string]any `json:"checksums"`
}

type sandboxResponse struct {
	ID        string `json:"sandbox_id"`
	Checksums map[string]struct {
		URL         string `json:"url"`
		NeedsUpload bool   `json:"needs_upload"`
	} `json:"checksums"`
}

// UploadCookbook uploads the cookbook files through a sandbox and saves the version manifest.
func (s *Server) UploadCookbook(ctx context.Context, cookbook domain.Cookbook, freeze bool) error {
	files, err := collectFiles(cookbook.Path)
	if err != nil {
		return err
	}

	m, err := buildManifest(cookbook, files, freeze)
	if err != nil {
		return err
	}

	if err := s.uploadSandbox(ctx, files); err != nil {
		return zerr.With(err, "cookbook", cookbook.Identity.Name())
	}

	path := "cookbooks/" + url.PathEscape(cookbook.Identity.Name()) + "/" + cookbook.Version.String()
	if err := s.send(ctx, http.MethodPut, path, m, nil); err != nil {
		if statusOf(err) == http.StatusConflict {
			return zerr.With(
				zerr.With(zerr.Wrap(domain.ErrFrozenCookbookConflict, "server rejected the upload"), "cookbook", cookbook.Identity.Name()),
				"version", cookbook.Version.String(),
			)
		}
		return zerr.With(requestFailed(err, "cannot save cookbook version"), "cookbook", cookbook.Identity.Name())
	}

	s.logger.Debug("saved " + cookbook.String())
	return nil
}

// uploadSandbox creates a sandbox for the checksums, uploads the files the server lacks
// and commits the sandbox.
func (s *Server) uploadSandbox(ctx context.Context, files []cookbookFile) error {
	byChecksum := make(map[string]cookbookFile, len(files))
	sums := make(map[string]any, len(files))
	for _, f := range files {
		byChecksum[f.Checksum] = f
		sums[f.Checksum] = nil
	}

	var sandbox sandboxResponse
	if err := s.send(ctx, http.MethodPost, "sandboxes", sandboxRequest{Checksums: sums}, &sandbox); err != nil {
		return requestFailed(err, "cannot create sandbox")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for sum, item := range sandbox.Checksums {
		if !item.NeedsUpload {
			continue
		}
		f, ok := byChecksum[sum]
		if !ok {
			continue
		}
		g.Go(func() error {
			return s.uploadFile(gctx, item.URL, f)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	commit := map[string]bool{"is_completed": true}
	if err := s.send(ctx, http.MethodPut, "sandboxes/"+sandbox.ID, commit, nil); err != nil {
		return zerr.With(requestFailed(err, "cannot commit sandbox"), "sandbox", sandbox.ID)
	}
	return nil
}

// uploadFile PUTs one file to the sandbox URL the server handed out.
func (s *Server) uploadFile(ctx context.Context, target string, f cookbookFile) error {
	data, err := os.ReadFile(f.abs)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read cookbook file"), "path", f.Path)
	}

	raw, err := hex.DecodeString(f.Checksum)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid checksum"), "path", f.Path)
	}

	req, err := s.client.NewRequest(http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return zerr.With(requestFailed(err, "cannot build file upload"), "path", f.Path)
	}
	req.Header.Set("Content-Type", "application/x-binary")
	req.Header.Set("Content-MD5", base64.StdEncoding.EncodeToString(raw))

	if _, err := s.client.Do(req.WithContext(ctx), nil); err != nil {
		return zerr.With(requestFailed(err, "file upload failed"), "path", f.Path)
	}
	s.logger.Debug("uploaded " + f.Path)
	return nil
}

// send issues a signed request with a JSON body and decodes the response into v when non-nil.
func (s *Server) send(ctx context.Context, method, path string, body, v any) error {
	reader, err := gochef.JSONReader(body)
	if err != nil {
		return err
	}
	req, err := s.client.NewRequest(method, path, reader)
	if err != nil {
		return err
	}
	_, err = s.client.Do(req.WithContext(ctx), v)
	return err
}
