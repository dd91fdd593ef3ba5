package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/perkinsfund/traceix-go/internal/errors"
)

const (
	uploadPath = "/api/traceix/v1/upload"
	capaPath   = "/api/traceix/v1/capa"
	exifPath   = "/api/traceix/v1/exif"
)

// AIPrediction uploads the file to the prediction endpoint.
func AIPrediction(ctx context.Context, httpClient *http.Client, baseURL, filename string) (any, error) {
	return upload(ctx, httpClient, baseURL, uploadPath, "ai prediction", filename)
}

// CapaExtraction uploads the file for capability extraction.
func CapaExtraction(ctx context.Context, httpClient *http.Client, baseURL, filename string) (any, error) {
	return upload(ctx, httpClient, baseURL, capaPath, "capa extraction", filename)
}

// ExifExtraction uploads the file for metadata extraction.
func ExifExtraction(ctx context.Context, httpClient *http.Client, baseURL, filename string) (any, error) {
	return upload(ctx, httpClient, baseURL, exifPath, "exif extraction", filename)
}

func upload(ctx context.Context, httpClient *http.Client, baseURL, path, op, filename string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.NewIOError(op, err)
	}

	body, contentType := streamFileForm(f, formFileName(filename))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, body)
	if err != nil {
		_ = body.Close() // unblocks the writer goroutine, which closes f
		return nil, err
	}
	httpReq.Header.Set("Content-Type", contentType)

	return send(httpClient, httpReq, op)
}

// streamFileForm packages f as a single multipart form field named "file"
// with content type application/octet-stream. Bytes flow through a pipe as
// the transport reads the request body, so file size never drives memory
// use. The goroutine owns f and closes it on every exit path.
func streamFileForm(f *os.File, name string) (*io.PipeReader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer func() { _ = f.Close() }()
		part, err := mw.CreateFormFile("file", name)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()
	return pr, mw.FormDataContentType()
}

// formFileName derives the advertised filename from the path's final
// element, falling back to the literal "file".
func formFileName(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "file"
	}
	return name
}
