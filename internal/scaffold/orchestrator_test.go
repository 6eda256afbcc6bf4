package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/mpgen/internal/fsutil"
	"github.com/modu-ai/mpgen/internal/manifest"
	"github.com/modu-ai/mpgen/internal/template"
	"github.com/modu-ai/mpgen/pkg/models"
)

const appJSON = `{
  "pages": ["pages/index/index"],
  "subPackages": [
    {"root": "packageA/order", "pages": ["pages/list/list"]}
  ],
  "window": {"navigationBarTitleText": "Demo"}
}
`

var templateFS = fstest.MapFS{
	"weapp/page/index.js":        {Data: []byte("Page({})\n")},
	"weapp/page/index.json":      {Data: []byte("{}\n")},
	"weapp/page/index.wxml":      {Data: []byte("<view>page</view>\n")},
	"weapp/page/index.wxss":      {Data: []byte(".page {}\n")},
	"weapp/component/index.js":   {Data: []byte("Component({})\n")},
	"weapp/component/index.json": {Data: []byte("{\"component\": true}\n")},
	"weapp/component/index.wxml": {Data: []byte("<view>component</view>\n")},
	"weapp/component/index.wxss": {Data: []byte(".component {}\n")},
}

type recorder struct {
	steps   []State
	planned []string
	copied  []string
}

func (r *recorder) Step(s State)           { r.steps = append(r.steps, s) }
func (r *recorder) Planned(files []string) { r.planned = files }
func (r *recorder) FileCopied(path string) { r.copied = append(r.copied, path) }

type fixture struct {
	entry string
	rec   *recorder
	orch  *Orchestrator
}

func newFixture(t *testing.T, dryRun bool) *fixture {
	t.Helper()
	return newFixtureFor(t, appJSON, dryRun)
}

func newFixtureFor(t *testing.T, content string, dryRun bool) *fixture {
	t.Helper()
	entry := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(entry, "app.json"), []byte(content), 0o644))

	m, err := manifest.Load(entry)
	require.NoError(t, err)

	rec := &recorder{}
	orch := New(Options{
		Entry:     entry,
		Manifest:  m,
		Templates: template.NewResolver(templateFS, "tpl", template.DefaultIgnore, nil),
		Reporter:  rec,
		DryRun:    dryRun,
	})
	return &fixture{entry: entry, rec: rec, orch: orch}
}

func readManifest(t *testing.T, entry string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load(entry)
	require.NoError(t, err)
	return m
}

func TestCreatePage_MainBundle(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.orch.CreatePage(context.Background(), "bar", "", "weapp")
	require.NoError(t, err)

	dest := filepath.Join(f.entry, "pages", "bar")
	assert.Equal(t, StateReported, res.State)
	assert.Equal(t, dest, res.Dest)
	assert.Equal(t, "pages/bar/bar", res.ManifestEntry)

	want := []string{
		filepath.Join(dest, "bar.js"),
		filepath.Join(dest, "bar.json"),
		filepath.Join(dest, "bar.wxml"),
		filepath.Join(dest, "bar.wxss"),
	}
	assert.Equal(t, want, res.Files)
	assert.Equal(t, want, f.rec.copied)
	assert.Equal(t, want, f.rec.planned)

	for i, ext := range []string{"js", "json", "wxml", "wxss"} {
		got, err := os.ReadFile(want[i])
		require.NoError(t, err)
		assert.Equal(t, templateFS["weapp/page/index."+ext].Data, got, "contents of %s", want[i])
	}

	m := readManifest(t, f.entry)
	assert.Equal(t, []string{"pages/index/index", "pages/bar/bar"}, m.Pages())
	assert.Equal(t, []string{"pages/list/list"}, m.SubPackages()[0].Pages)

	assert.Equal(t, []State{
		StateTemplateResolved, StateDestinationValidated, StateDirectoryCreated,
		StateFilesCopied, StateManifestUpdated, StateReported,
	}, f.rec.steps)
}

func TestCreatePage_SubPackage(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.orch.CreatePage(context.Background(), "pay", "packageA/order", "weapp")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.entry, "packageA", "order", "pages", "pay"), res.Dest)
	assert.Equal(t, "packageA/order/pages/pay/pay", res.ManifestEntry)

	m := readManifest(t, f.entry)
	assert.Equal(t, []string{"pages/index/index"}, m.Pages())
	assert.Equal(t, []string{"pages/list/list", "pages/pay/pay"}, m.SubPackages()[0].Pages)
}

const slashRootAppJSON = `{
  "pages": ["pages/index/index"],
  "subPackages": [
    {"root": "/packageA", "pages": ["pages/list/list"]}
  ]
}
`

func TestCreatePage_LeadingSlashRoot(t *testing.T) {
	f := newFixtureFor(t, slashRootAppJSON, false)

	root, ok := f.orch.manifest.ModuleIndex().Lookup("packageA")
	require.True(t, ok)
	require.Equal(t, "/packageA", root)

	res, err := f.orch.CreatePage(context.Background(), "pay", root, "weapp")
	require.NoError(t, err)
	assert.Equal(t, StateReported, res.State)
	assert.Equal(t, filepath.Join(f.entry, "packageA", "pages", "pay"), res.Dest)
	assert.FileExists(t, filepath.Join(f.entry, "packageA", "pages", "pay", "pay.wxml"))

	m := readManifest(t, f.entry)
	assert.Equal(t, []string{"pages/index/index"}, m.Pages())
	assert.Equal(t, "/packageA", m.SubPackages()[0].Root)
	assert.Equal(t, []string{"pages/list/list", "pages/pay/pay"}, m.SubPackages()[0].Pages)
}

func TestCreateComponent_LeadingSlashRoot(t *testing.T) {
	tests := []struct {
		name string
		req  models.ScaffoldRequest
		dest []string
	}{
		{
			name: "module scope",
			req:  models.ScaffoldRequest{ComponentScope: models.ScopeModule, ParentModule: "/packageA"},
			dest: []string{"packageA", "components", "card"},
		},
		{
			name: "page scope",
			req:  models.ScaffoldRequest{ComponentScope: models.ScopePage, ParentPage: &models.PageRef{Page: "list", Root: "/packageA"}},
			dest: []string{"packageA", "pages", "list", "components", "card"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtureFor(t, slashRootAppJSON, false)
			req := tt.req
			req.AppFlavor = "weapp"
			req.Kind = models.KindComponent
			req.Name = "card"

			res, err := f.orch.Execute(context.Background(), req)
			require.NoError(t, err)
			want := filepath.Join(append([]string{f.entry}, tt.dest...)...)
			assert.Equal(t, want, res.Dest)
			assert.FileExists(t, filepath.Join(want, "card.js"))
		})
	}
}

func TestCreatePage_AlreadyExists(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.orch.CreatePage(ctx, "bar", "", "weapp")
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
	require.NoError(t, err)

	res, err := f.orch.CreatePage(ctx, "bar", "", "weapp")
	assert.True(t, errors.Is(err, ErrPageAlreadyExists), "got %v", err)
	assert.Equal(t, StateTemplateResolved, res.State)
	assert.False(t, IsFatal(err))

	after, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after, "manifest must be unchanged")

	entries, err := os.ReadDir(filepath.Join(f.entry, "pages", "bar"))
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestCreatePage_ModuleNotFoundAfterCopy(t *testing.T) {
	f := newFixture(t, false)
	before, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
	require.NoError(t, err)

	res, err := f.orch.CreatePage(context.Background(), "ghost", "packageZ", "weapp")
	assert.True(t, errors.Is(err, manifest.ErrModuleNotFound), "got %v", err)
	assert.Equal(t, StateFilesCopied, res.State)
	assert.Len(t, res.Files, 4)

	for _, p := range res.Files {
		assert.True(t, fsutil.Exists(p), "copied file %s stays on disk", p)
	}
	after, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreatePage_DestinationFileCollision(t *testing.T) {
	f := newFixture(t, false)
	m := readManifest(t, f.entry)

	// A template with two files mapping to the same destination.
	fsys := fstest.MapFS{
		"weapp/page/a.js": {Data: []byte("1")},
		"weapp/page/b.js": {Data: []byte("2")},
	}
	orch := New(Options{
		Entry:     f.entry,
		Manifest:  m,
		Templates: template.NewResolver(fsys, "tpl", nil, nil),
	})

	res, err := orch.CreatePage(context.Background(), "dup", "", "weapp")
	assert.True(t, errors.Is(err, fsutil.ErrDestinationExists), "got %v", err)
	assert.Equal(t, StateDirectoryCreated, res.State)
	assert.Len(t, res.Files, 1)

	got, err := os.ReadFile(filepath.Join(f.entry, "pages", "dup", "dup.js"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
	assert.NotContains(t, readManifest(t, f.entry).Pages(), "pages/dup/dup")
}

func TestCreatePage_TemplateNotFound(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.orch.CreatePage(context.Background(), "bar", "", "alipay")
	assert.True(t, errors.Is(err, template.ErrTemplateNotFound), "got %v", err)
	assert.True(t, IsFatal(err))
	assert.Equal(t, StateIdle, res.State)
	assert.False(t, fsutil.Exists(filepath.Join(f.entry, "pages", "bar")))
}

func TestCreatePage_CancelledContext(t *testing.T) {
	f := newFixture(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := f.orch.CreatePage(ctx, "bar", "", "weapp")
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Equal(t, StateDestinationValidated, res.State)
	assert.False(t, fsutil.Exists(res.Dest))
}

func TestCreatePage_DryRun(t *testing.T) {
	f := newFixture(t, true)
	before, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
	require.NoError(t, err)

	res, err := f.orch.CreatePage(context.Background(), "bar", "", "weapp")
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, StateDestinationValidated, res.State)
	assert.Len(t, res.Files, 4)
	assert.Equal(t, "pages/bar/bar", res.ManifestEntry)

	assert.False(t, fsutil.Exists(res.Dest))
	after, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateComponent_Scopes(t *testing.T) {
	tests := []struct {
		name string
		req  models.ScaffoldRequest
		dest []string
	}{
		{
			name: "global",
			req:  models.ScaffoldRequest{ComponentScope: models.ScopeGlobal},
			dest: []string{"components", "card"},
		},
		{
			name: "module",
			req:  models.ScaffoldRequest{ComponentScope: models.ScopeModule, ParentModule: "packageA/order"},
			dest: []string{"packageA", "order", "components", "card"},
		},
		{
			name: "page in main bundle",
			req:  models.ScaffoldRequest{ComponentScope: models.ScopePage, ParentPage: &models.PageRef{Page: "index"}},
			dest: []string{"pages", "index", "components", "card"},
		},
		{
			name: "page in sub-package",
			req:  models.ScaffoldRequest{ComponentScope: models.ScopePage, ParentPage: &models.PageRef{Page: "list", Root: "packageA/order"}},
			dest: []string{"packageA", "order", "pages", "list", "components", "card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			before, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
			require.NoError(t, err)

			req := tt.req
			req.AppFlavor, req.Kind, req.Name = "weapp", models.KindComponent, "card"

			res, err := f.orch.Execute(context.Background(), req)
			require.NoError(t, err)

			dest := filepath.Join(append([]string{f.entry}, tt.dest...)...)
			assert.Equal(t, dest, res.Dest)
			assert.Equal(t, StateReported, res.State)
			assert.Empty(t, res.ManifestEntry)
			for _, ext := range []string{".js", ".json", ".wxml", ".wxss"} {
				assert.FileExists(t, filepath.Join(dest, "card"+ext))
			}
			assert.NotContains(t, f.rec.steps, StateManifestUpdated)

			after, err := os.ReadFile(filepath.Join(f.entry, "app.json"))
			require.NoError(t, err)
			assert.Equal(t, before, after, "components never touch the manifest")
		})
	}
}

func TestCreateComponent_AlreadyExists(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, os.MkdirAll(filepath.Join(f.entry, "components", "card"), 0o755))

	req := models.ScaffoldRequest{AppFlavor: "weapp", Kind: models.KindComponent, Name: "card", ComponentScope: models.ScopeGlobal}
	res, err := f.orch.Execute(context.Background(), req)
	assert.True(t, errors.Is(err, ErrComponentAlreadyExists), "got %v", err)
	assert.Equal(t, StateTemplateResolved, res.State)
}

func TestCreateComponent_CustomComponentsDir(t *testing.T) {
	f := newFixture(t, false)
	orch := New(Options{
		Entry:         f.entry,
		Manifest:      readManifest(t, f.entry),
		Templates:     template.NewResolver(templateFS, "tpl", nil, nil),
		ComponentsDir: "src/widgets",
	})

	req := models.ScaffoldRequest{AppFlavor: "weapp", Kind: models.KindComponent, Name: "card", ComponentScope: models.ScopeGlobal}
	res, err := orch.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.entry, "src", "widgets", "card"), res.Dest)
}

func TestExecute_InvalidRequest(t *testing.T) {
	f := newFixture(t, false)

	req := models.ScaffoldRequest{AppFlavor: "weapp", Kind: models.KindPage, Name: "bar", ComponentScope: models.ScopeGlobal}
	res, err := f.orch.Execute(context.Background(), req)
	assert.True(t, errors.Is(err, models.ErrInvalidRequest), "got %v", err)
	assert.Equal(t, StateIdle, res.State)
	assert.Empty(t, f.rec.steps)
}

func TestExecute_NameWithSeparator(t *testing.T) {
	f := newFixture(t, false)

	req := models.ScaffoldRequest{AppFlavor: "weapp", Kind: models.KindPage, Name: "a/../../x"}
	res, err := f.orch.Execute(context.Background(), req)
	assert.True(t, errors.Is(err, models.ErrInvalidRequest), "got %v", err)
	assert.Equal(t, StateIdle, res.State)
	assert.NoDirExists(t, filepath.Join(f.entry, "x"))
	assert.NoDirExists(t, filepath.Join(f.entry, "pages", "x"))
	assert.Equal(t, []string{"pages/index/index"}, readManifest(t, f.entry).Pages())
}

func TestExecute_PathEscape(t *testing.T) {
	f := newFixture(t, false)

	req := models.ScaffoldRequest{AppFlavor: "weapp", Kind: models.KindComponent, Name: "card", ComponentScope: models.ScopeModule, ParentModule: "../../outside"}
	_, err := f.orch.Execute(context.Background(), req)
	assert.True(t, errors.Is(err, fsutil.ErrPathEscape), "got %v", err)
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(manifest.ErrManifestNotFound))
	assert.True(t, IsFatal(template.ErrTemplateNotFound))
	assert.False(t, IsFatal(manifest.ErrModuleNotFound))
	assert.False(t, IsFatal(ErrPageAlreadyExists))
	assert.False(t, IsFatal(nil))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "manifest updated", StateManifestUpdated.String())
	assert.Equal(t, "reported", StateReported.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "unknown", State(-1).String())
}
