package download

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
)

func artifact(name, body string) survey.Artifact {
	return survey.Artifact{
		Filename: name,
		Size:     int64(len(body)),
		Body:     io.NopCloser(strings.NewReader(body)),
	}
}

func TestDir_Save(t *testing.T) {
	root := filepath.Join(t.TempDir(), "downloads")
	d := NewDir(root)

	loc, err := d.Save(context.Background(), artifact("survey_surveyXYZ.docx", "docx-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if loc != filepath.Join(root, "survey_surveyXYZ.docx") {
		t.Errorf("location = %q", loc)
	}
	got, err := os.ReadFile(loc)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != "docx-bytes" {
		t.Errorf("content = %q", got)
	}
}

func TestDir_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	d := NewDir(dir)
	if _, err := d.Save(context.Background(), artifact("survey_1.docx", "old content")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	loc, err := d.Save(context.Background(), artifact("survey_1.docx", "new"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, _ := os.ReadFile(loc)
	if string(got) != "new" {
		t.Errorf("content = %q, want new", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestDir_RejectsEscapingNames(t *testing.T) {
	d := NewDir(t.TempDir())
	for _, name := range []string{"", ".", "..", "../x.docx", "a/b.docx", `a\b.docx`} {
		_, err := d.Save(context.Background(), artifact(name, "x"))
		if !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidFilename", name, err)
		}
	}
}

func TestDir_CancelledContext(t *testing.T) {
	d := NewDir(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.Save(ctx, artifact("survey_1.docx", "x")); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDir_Check(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	d := NewDir(dir)
	if err := d.Check(context.Background()); err != nil {
		t.Fatalf("Check: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("check file left behind: %d entries", len(entries))
	}
}
