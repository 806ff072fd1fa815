package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"registration-manager/core/locale"
)

const (
	subjectFile   = "subject.txt"
	bodyFile      = "body.html"
	attachmentDir = "attachments"
)

// Config holds configuration for the template store.
type Config struct {
	// Dir is the root directory holding one template directory per locale tag.
	Dir string `mapstructure:"dir" default:"templates"`
	// DefaultLocale is the tag whose templates serve locales without their own.
	DefaultLocale string `mapstructure:"default_locale" default:"eng"`
}

// Template is the notification material for one locale.
type Template struct {
	// Locale is the locale whose directory the material came from. After a
	// fallback this is the default locale, not the requested one.
	Locale locale.Locale
	// Subject is the subject line template.
	Subject string
	// Body is the HTML body template.
	Body string
	// Attachments lists files to attach, sorted by name.
	Attachments []string
}

// Store loads per-locale notification templates from disk.
type Store struct {
	dir      string
	fallback locale.Locale
}

// NewStore creates a template store rooted at cfg.Dir. The default locale's
// templates must exist and load; every other locale may fall back to them.
func NewStore(cfg Config) (*Store, error) {
	fallback, err := locale.Parse(cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("default locale: %w", err)
	}

	s := &Store{dir: cfg.Dir, fallback: fallback}
	if _, err := s.load(fallback); err != nil {
		return nil, fmt.Errorf("default locale templates: %w", err)
	}
	return s, nil
}

// Resolve returns the template material for a locale, falling back to the
// default locale when the requested locale has no template directory. A
// directory that exists but is incomplete is an error, not a fallback.
func (s *Store) Resolve(loc locale.Locale) (*Template, error) {
	if _, err := os.Stat(s.localeDir(loc)); os.IsNotExist(err) {
		return s.load(s.fallback)
	}
	return s.load(loc)
}

func (s *Store) localeDir(loc locale.Locale) string {
	return filepath.Join(s.dir, loc.String())
}

func (s *Store) load(loc locale.Locale) (*Template, error) {
	dir := s.localeDir(loc)

	subject, err := os.ReadFile(filepath.Join(dir, subjectFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s subject: %w", loc, err)
	}
	body, err := os.ReadFile(filepath.Join(dir, bodyFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s body: %w", loc, err)
	}

	attachments, err := listAttachments(filepath.Join(dir, attachmentDir))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s attachments: %w", loc, err)
	}

	return &Template{
		Locale:      loc,
		Subject:     strings.TrimSpace(string(subject)),
		Body:        string(body),
		Attachments: attachments,
	}, nil
}

func listAttachments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// ReadDir returns entries sorted by name.
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
