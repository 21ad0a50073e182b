package specfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keurnel/x86decode/internal/specfile"
)

func TestExpandIncludes_ResolvesRelativeToBaseDir(t *testing.T) {
	tmpDir := t.TempDir()

	child := filepath.Join(tmpDir, "child.spec")
	os.WriteFile(child, []byte("ENTRY mnemonic=NOP map=one opcode=0x90"), 0644)

	source := `!include "child.spec"` + "\nENTRY mnemonic=HLT map=one opcode=0xF4"

	expanded, inclusions, err := specfile.ExpandIncludes(source, tmpDir, nil)
	if err != nil {
		t.Fatalf("ExpandIncludes: %v", err)
	}
	if len(inclusions) != 1 {
		t.Fatalf("expected 1 inclusion, got %d", len(inclusions))
	}
	if !strings.Contains(expanded, "mnemonic=NOP") {
		t.Errorf("expected child.spec content inlined, got:\n%s", expanded)
	}
	if !strings.Contains(expanded, "mnemonic=HLT") {
		t.Errorf("expected root content preserved, got:\n%s", expanded)
	}
}

func TestExpandIncludes_NoDirectivesIsNoOp(t *testing.T) {
	source := "ENTRY mnemonic=NOP map=one opcode=0x90"
	expanded, inclusions, err := specfile.ExpandIncludes(source, "/anywhere", nil)
	if err != nil {
		t.Fatalf("ExpandIncludes: %v", err)
	}
	if inclusions != nil {
		t.Fatalf("expected no inclusions, got %v", inclusions)
	}
	if expanded != source {
		t.Errorf("expected source unchanged, got %q", expanded)
	}
}

func TestExpandIncludes_RejectsNonSpecExtension(t *testing.T) {
	source := `!include "fragment.txt"`
	if _, _, err := specfile.ExpandIncludes(source, "/anywhere", nil); err == nil {
		t.Fatal("expected an error for a non-.spec include target")
	}
}

func TestLoad_FlattensIncludeTree(t *testing.T) {
	tmpDir := t.TempDir()

	child := filepath.Join(tmpDir, "child.spec")
	os.WriteFile(child, []byte("ENTRY mnemonic=NOP map=one opcode=0x90"), 0644)

	root := filepath.Join(tmpDir, "root.spec")
	os.WriteFile(root, []byte(`!include "child.spec"`+"\nENTRY mnemonic=HLT map=one opcode=0xF4"), 0644)

	flattened, err := specfile.Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(flattened, "mnemonic=NOP") || !strings.Contains(flattened, "mnemonic=HLT") {
		t.Errorf("expected both root and included records in flattened output, got:\n%s", flattened)
	}
}

func TestLoad_RejectsCycle(t *testing.T) {
	tmpDir := t.TempDir()

	fileA := filepath.Join(tmpDir, "a.spec")
	fileB := filepath.Join(tmpDir, "b.spec")
	os.WriteFile(fileA, []byte(`!include "b.spec"`), 0644)
	os.WriteFile(fileB, []byte(`!include "a.spec"`), 0644)

	if _, err := specfile.Load(fileA); err == nil {
		t.Fatal("expected an include-cycle error")
	}
}
