package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	DefaultMaxBytes = 10 << 20
	DefaultDir      = "./uploads"
	DefaultURLBase  = "/static/uploads"

	// sniffLen is how much of the file mimetype inspects.
	sniffLen = 3072
)

// allowedMimeTypes maps accepted image types to the extension stored on disk.
var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Config struct {
	Dir      string
	URLBase  string
	MaxBytes int64
}

// Service stores images on local disk and records them in the database.
type Service struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

func NewService(repo Repository, cfg Config) *Service {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.URLBase == "" {
		cfg.URLBase = DefaultURLBase
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	cfg.URLBase = strings.TrimRight(cfg.URLBase, "/")
	return &Service{repo: repo, cfg: cfg, now: time.Now}
}

func (s *Service) MaxBytes() int64 { return s.cfg.MaxBytes }

// Upload sniffs src, writes it under Dir/YYYY/MM/DD/ and records it. size is
// the client-declared length; the limit is enforced on the bytes actually read.
func (s *Service) Upload(ctx context.Context, userID int64, filename string, size int64, src io.Reader) (*Upload, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if size > s.cfg.MaxBytes {
		return nil, ErrFileTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, ErrEmptyFile
	}
	head = head[:n]

	mimeType := mimetype.Detect(head).String()
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrInvalidMimeType
	}

	now := s.now().UTC()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.cfg.Dir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	id := uuid.New().String()
	name := id + "_" + sanitizeName(filename) + ext
	absPath := filepath.Join(absDir, name)

	written, err := s.write(absPath, io.MultiReader(bytes.NewReader(head), src))
	if err != nil {
		_ = os.Remove(absPath)
		return nil, err
	}

	relPath := relDir + "/" + name
	u := &Upload{
		ID:           id,
		UserID:       userID,
		OriginalName: filepath.Base(filename),
		FilePath:     relPath,
		FileURL:      s.cfg.URLBase + "/" + relPath,
		MimeType:     mimeType,
		Size:         written,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		_ = os.Remove(absPath) // rollback file on DB error
		return nil, fmt.Errorf("save upload record: %w", err)
	}
	return u, nil
}

func (s *Service) write(path string, src io.Reader) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, s.cfg.MaxBytes+1))
	if err != nil {
		return 0, fmt.Errorf("write file: %w", err)
	}
	if written > s.cfg.MaxBytes {
		return 0, ErrFileTooLarge
	}
	return written, dst.Close()
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Upload, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

// Delete removes the DB record and then the file.
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// the file may already be gone
	_ = os.Remove(filepath.Join(s.cfg.Dir, filepath.FromSlash(u.FilePath)))
	return nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" || name == "_" {
		return "file"
	}
	return name
}
