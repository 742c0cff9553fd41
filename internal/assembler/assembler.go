package assembler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"github.com/gookit/color"
	"github.com/vk/hyprcustom/internal/ctxlog"
	"github.com/vk/hyprcustom/internal/descriptor"
	"github.com/vk/hyprcustom/internal/fsutil"
	"github.com/vk/hyprcustom/internal/override"
)

// Options names the inputs and outputs of a run. SourceDir is the upstream
// recipe directory and DescriptorName the descriptor file inside it, for
// example PKGBUILD. OutputDir is deleted and rebuilt on every run.
type Options struct {
	SourceDir      string
	OutputDir      string
	PatchPath      string
	DescriptorName string
}

// Assembler runs the descriptor transformation.
type Assembler struct {
	opts      Options
	overrides *override.Set
	status    io.Writer
}

// New returns an Assembler. The confirmation line of a successful run is
// written to status.
func New(opts Options, overrides *override.Set, status io.Writer) *Assembler {
	return &Assembler{opts: opts, overrides: overrides, status: status}
}

// Run executes every stage in order and returns the path of the written
// descriptor.
func (a *Assembler) Run(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)
	patchName := filepath.Base(a.opts.PatchPath)

	logger.Debug("Staging recipe directory.", "source", a.opts.SourceDir, "output", a.opts.OutputDir)
	if err := a.stage(); err != nil {
		return "", &StageError{Stage: StageStaging, Err: err}
	}

	env, err := a.evaluate(ctx)
	if err != nil {
		return "", &StageError{Stage: StageEvaluate, Err: err}
	}

	logger.Debug("Applying overrides.", "rules", a.overrides.Len())
	if err := a.overrides.Apply(ctx, env, patchName); err != nil {
		return "", &StageError{Stage: StageOverride, Err: err}
	}

	prepare, err := RewritePrepare(env, patchName)
	if err != nil {
		return "", &StageError{Stage: StageRewritePrepare, Err: err}
	}
	logger.Debug("prepare() rewritten.", "patch", patchName)

	doc, err := Compose(env, prepare)
	if err != nil {
		return "", &StageError{Stage: StageEmit, Err: err}
	}
	path := filepath.Join(a.opts.OutputDir, a.opts.DescriptorName)
	if err := writeDescriptor(path, doc.Bytes()); err != nil {
		return "", &StageError{Stage: StageEmit, Err: err}
	}
	logger.Debug("Descriptor written.", "path", path, "fields", len(doc.Assignments), "functions", len(doc.Functions))

	fmt.Fprintln(a.status, color.Success.Sprintf("Generated %s", path))
	return path, nil
}

// stage recreates the output directory as a copy of the recipe plus the
// patch, minus the upstream descriptor.
func (a *Assembler) stage() error {
	source := filepath.Join(a.opts.SourceDir, a.opts.DescriptorName)
	for _, p := range []string{a.opts.SourceDir, source, a.opts.PatchPath} {
		if _, err := os.Stat(p); err != nil {
			return &MissingInputError{Path: p, Err: err}
		}
	}
	if err := checkDisjoint(a.opts.SourceDir, a.opts.OutputDir); err != nil {
		return err
	}

	if err := os.RemoveAll(a.opts.OutputDir); err != nil {
		return fmt.Errorf("failed to clear %s: %w", a.opts.OutputDir, err)
	}
	if err := fsutil.CopyTree(a.opts.SourceDir, a.opts.OutputDir); err != nil {
		return fmt.Errorf("failed to copy recipe: %w", err)
	}
	if err := fsutil.CopyFile(a.opts.PatchPath, filepath.Join(a.opts.OutputDir, filepath.Base(a.opts.PatchPath))); err != nil {
		return fmt.Errorf("failed to copy patch: %w", err)
	}
	if err := os.Remove(filepath.Join(a.opts.OutputDir, a.opts.DescriptorName)); err != nil {
		return fmt.Errorf("failed to remove staged descriptor: %w", err)
	}
	return nil
}

func (a *Assembler) evaluate(ctx context.Context) (*descriptor.Environment, error) {
	path := filepath.Join(a.opts.SourceDir, a.opts.DescriptorName)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return descriptor.Evaluate(ctx, f, path)
}

// checkDisjoint refuses output directories that would delete or recurse
// into the recipe.
func checkDisjoint(source, output string) error {
	src, err := filepath.Abs(source)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if src == out || isWithin(src, out) || isWithin(out, src) {
		return errors.New("output directory must not overlap the source directory")
	}
	return nil
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writeDescriptor(path string, data []byte) error {
	f, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return err
	}
	defer f.Cleanup()
	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	return f.CloseAtomicallyReplace()
}
