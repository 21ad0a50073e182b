package specfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keurnel/x86decode/internal/specfile"
)

func TestBuildGraph_Acyclic(t *testing.T) {
	tmpDir := t.TempDir()

	child := filepath.Join(tmpDir, "child.spec")
	os.WriteFile(child, []byte("ENTRY mnemonic=NOP map=one opcode=0x90"), 0644)

	root := filepath.Join(tmpDir, "root.spec")
	rootSource := `!include "child.spec"` + "\nENTRY mnemonic=HLT map=one opcode=0xF4"
	os.WriteFile(root, []byte(rootSource), 0644)

	graph, err := specfile.BuildGraph(root, rootSource, tmpDir)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if cycle := graph.CyclePath(); cycle != nil {
		t.Fatalf("expected acyclic graph, got cycle %v", cycle)
	}
}

func TestBuildGraph_DirectCycle(t *testing.T) {
	tmpDir := t.TempDir()

	fileA := filepath.Join(tmpDir, "a.spec")
	fileB := filepath.Join(tmpDir, "b.spec")
	os.WriteFile(fileA, []byte(`!include "b.spec"`), 0644)
	os.WriteFile(fileB, []byte(`!include "a.spec"`), 0644)

	sourceA, _ := os.ReadFile(fileA)
	graph, err := specfile.BuildGraph(fileA, string(sourceA), tmpDir)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if cycle := graph.CyclePath(); cycle == nil {
		t.Fatal("expected a cycle between a.spec and b.spec, got none")
	}
}

func TestBuildGraph_SharedInclude(t *testing.T) {
	tmpDir := t.TempDir()

	shared := filepath.Join(tmpDir, "shared.spec")
	os.WriteFile(shared, []byte("ENTRY mnemonic=NOP map=one opcode=0x90"), 0644)

	fileA := filepath.Join(tmpDir, "a.spec")
	fileB := filepath.Join(tmpDir, "b.spec")
	os.WriteFile(fileA, []byte(`!include "shared.spec"`), 0644)
	os.WriteFile(fileB, []byte(`!include "shared.spec"`), 0644)

	root := filepath.Join(tmpDir, "root.spec")
	rootSource := "!include \"a.spec\"\n!include \"b.spec\""
	os.WriteFile(root, []byte(rootSource), 0644)

	graph, err := specfile.BuildGraph(root, rootSource, tmpDir)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if cycle := graph.CyclePath(); cycle != nil {
		t.Fatalf("expected acyclic graph for a shared dependency, got cycle %v", cycle)
	}
}

func TestBuildGraph_NonSpecExtensionRejected(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "root.spec")
	source := `!include "other.txt"`

	if _, err := specfile.BuildGraph(root, source, tmpDir); err == nil {
		t.Fatal("expected an error for a non-.spec include target")
	}
}
