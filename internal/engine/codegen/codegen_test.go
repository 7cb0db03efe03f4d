package codegen_test

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/automap/internal/core/ports/mocks"
	"go.trai.ch/automap/internal/engine/codegen"
	"go.uber.org/mock/gomock"
)

func fixture(dir string) *domain.PackageReport {
	return &domain.PackageReport{
		Name: "model",
		Path: "example.com/model",
		Dir:  dir,
		Types: []domain.TypeReport{
			{
				Name: "Derived",
				Members: []domain.MemberReport{
					{Name: "Describe", Kind: domain.KindProperty, Type: "string"},
					{Name: "Y", Kind: domain.KindProperty, Type: "int", Writable: true},
					{Name: "Created", Kind: domain.KindField, Type: "time.Time", Writable: true},
					{Name: "X", Kind: domain.KindField, Type: "int", Writable: true, Path: []string{"Base"}},
				},
				Methods: []domain.MethodReport{
					{Name: "Describe", Results: []string{"string"}},
					{Name: "Y", Results: []string{"int"}},
				},
			},
			{
				Name:      "Entity",
				Interface: true,
				Members: []domain.MemberReport{
					{Name: "ID", Kind: domain.KindProperty, Type: "int"},
					{Name: "Label", Kind: domain.KindProperty, Type: "string"},
				},
				Methods: []domain.MethodReport{
					{Name: "ID", Results: []string{"int"}},
					{Name: "Label", Results: []string{"string"}},
				},
			},
			{
				Name: "Ambiguous",
				Members: []domain.MemberReport{
					{Name: "Name", Kind: domain.KindProperty, Type: "string", Writable: true, Path: []string{"Labelled"}},
				},
			},
			{
				Name: "Secret",
				Members: []domain.MemberReport{
					{Name: "Code", Kind: domain.KindField, Type: "string", Writable: true},
				},
				Methods: []domain.MethodReport{
					{Name: "Check", Results: []string{"bool", "error"}},
				},
			},
			{
				Name: "Shadowed",
				Members: []domain.MemberReport{
					{Name: "Code", Kind: domain.KindProperty, Type: "int", Writable: true, Path: []string{"Counter"}},
				},
				Methods: []domain.MethodReport{
					{Name: "Code", Results: []string{"string"}},
				},
			},
			{Name: "Empty"},
		},
	}
}

func TestRender_Golden(t *testing.T) {
	src, err := codegen.Render(fixture(""))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "render", src)
}

func TestRender_ParsesAsGo(t *testing.T) {
	src, err := codegen.Render(fixture(""))
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "automap_accessors.go", src, parser.ParseComments)
	require.NoError(t, err)

	assert.True(t, ast.IsGenerated(file))
	assert.Equal(t, "model", file.Name.Name)

	var funcs []string
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn.Name.Name)
		}
	}
	assert.Contains(t, funcs, "DerivedReadAccessors")
	assert.Contains(t, funcs, "SecretNoArgMethods")
	assert.Contains(t, funcs, "ShadowedReadAccessors")
	assert.Len(t, funcs, 12)
}

func TestRender_InvalidName(t *testing.T) {
	_, err := codegen.Render(&domain.PackageReport{Name: "model", Types: []domain.TypeReport{{Name: "not valid"}}})
	require.ErrorContains(t, err, domain.ErrRenderFailed.Error())
}

func newGenerator(t *testing.T) (*codegen.Generator, *mocks.MockManifestStore, time.Time) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := codegen.New(log, codegen.WithClock(func() time.Time { return now }))
	return gen, mocks.NewMockManifestStore(ctrl), now
}

func TestGenerator_WritesFileAndRecord(t *testing.T) {
	gen, store, now := newGenerator(t)
	dir := t.TempDir()
	output := filepath.Join(dir, domain.DefaultOutputFile)

	store.EXPECT().Get(output).Return(nil, nil)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(rec domain.GenerationRecord) error {
		assert.Equal(t, output, rec.Output)
		assert.Equal(t, "example.com/model", rec.Package)
		assert.Equal(t, []string{"Derived", "Entity", "Ambiguous", "Secret", "Shadowed", "Empty"}, rec.Types)
		assert.Equal(t, now, rec.GeneratedAt)
		assert.Len(t, rec.Hash, 16)
		return nil
	})

	res, err := gen.Generate(codegen.Request{Report: fixture(dir), Store: store})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, output, res.Output)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, res.Hash, codegen.Fingerprint(written))
}

func TestGenerator_SkipsUpToDate(t *testing.T) {
	gen, store, _ := newGenerator(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "tables.go")

	src, err := codegen.Render(fixture(dir))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(output, src, 0o600))
	hash := codegen.Fingerprint(src)

	store.EXPECT().Get(output).Return(&domain.GenerationRecord{Output: output, Hash: hash}, nil)

	res, err := gen.Generate(codegen.Request{Report: fixture(dir), Output: "tables.go", Store: store})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, hash, res.Hash)
}

func TestGenerator_RewritesEditedFile(t *testing.T) {
	gen, store, _ := newGenerator(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "tables.go")

	src, err := codegen.Render(fixture(dir))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(output, []byte("package model\n"), 0o600))

	store.EXPECT().Get(output).Return(&domain.GenerationRecord{Output: output, Hash: codegen.Fingerprint(src)}, nil)
	store.EXPECT().Put(gomock.Any()).Return(nil)

	res, err := gen.Generate(codegen.Request{Report: fixture(dir), Output: "tables.go", Store: store})
	require.NoError(t, err)
	assert.True(t, res.Changed)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, src, written)
}

func TestGenerator_ForceSkipsManifestLookup(t *testing.T) {
	gen, store, _ := newGenerator(t)
	dir := t.TempDir()

	store.EXPECT().Put(gomock.Any()).Return(nil)

	res, err := gen.Generate(codegen.Request{Report: fixture(dir), Store: store, Force: true})
	require.NoError(t, err)
	assert.True(t, res.Changed)
}

func TestGenerator_Errors(t *testing.T) {
	t.Run("manifest read", func(t *testing.T) {
		gen, store, _ := newGenerator(t)
		store.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrStoreReadFailed)

		_, err := gen.Generate(codegen.Request{Report: fixture(t.TempDir()), Store: store})
		require.ErrorIs(t, err, domain.ErrStoreReadFailed)
	})

	t.Run("manifest write", func(t *testing.T) {
		gen, store, _ := newGenerator(t)
		store.EXPECT().Put(gomock.Any()).Return(domain.ErrStoreWriteFailed)

		_, err := gen.Generate(codegen.Request{Report: fixture(t.TempDir()), Store: store, Force: true})
		require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	})

	t.Run("output write", func(t *testing.T) {
		gen, store, _ := newGenerator(t)
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		_, err := gen.Generate(codegen.Request{
			Report: fixture(dir),
			Output: filepath.Join("blocker", "tables.go"),
			Store:  store,
			Force:  true,
		})
		require.ErrorContains(t, err, domain.ErrOutputWriteFailed.Error())
	})

	t.Run("render", func(t *testing.T) {
		gen, store, _ := newGenerator(t)
		report := &domain.PackageReport{Name: "model", Types: []domain.TypeReport{{Name: "not valid"}}}

		_, err := gen.Generate(codegen.Request{Report: report, Store: store})
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrStoreReadFailed))
		require.ErrorContains(t, err, domain.ErrRenderFailed.Error())
	})
}
