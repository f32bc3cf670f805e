package workspace

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
	"github.com/graph-benchmarks/graph-benchmarks/internal/manifest"
	"github.com/graph-benchmarks/graph-benchmarks/internal/reconcile"
	"github.com/graph-benchmarks/graph-benchmarks/internal/snapshot"
)

// Default file locations relative to the workspace root.
const (
	DefaultConfigFile = "build.config.toml"
	WorkspaceManifest = "Cargo.toml"
	ProviderManifest  = "providers/base-provider/Cargo.toml"
	DriverManifest    = "drivers/base-driver/Cargo.toml"
)

// ErrSnapshotRequired is returned by Load when Options.RequireSnapshot is set
// and no snapshot exists yet.
var ErrSnapshotRequired = errors.New("no snapshot of a previous run")

// Options configures Load.
type Options struct {
	// ConfigPath is the build config path, relative to the root unless
	// absolute. Empty means build.config.toml.
	ConfigPath string
	// RequireSnapshot turns a missing snapshot into an error instead of
	// treating the prior state as empty.
	RequireSnapshot bool
	Logger          zerolog.Logger
}

// Paths holds the resolved location of every file a run reads or writes.
type Paths struct {
	Config     string
	Workspace  string
	Providers  string
	Drivers    string
	Snapshot   string
	DriverList string
}

// Manifests lists the three manifest paths in the order they are written.
func (p Paths) Manifests() []string {
	return []string{p.Workspace, p.Providers, p.Drivers}
}

// ResolvePaths computes the file layout for a workspace root.
func ResolvePaths(root, configPath string) Paths {
	if configPath == "" {
		configPath = DefaultConfigFile
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	store := snapshot.NewStore(root)
	return Paths{
		Config:     configPath,
		Workspace:  filepath.Join(root, WorkspaceManifest),
		Providers:  filepath.Join(root, filepath.FromSlash(ProviderManifest)),
		Drivers:    filepath.Join(root, filepath.FromSlash(DriverManifest)),
		Snapshot:   store.Path,
		DriverList: store.DriverListPath,
	}
}

// Context holds the resolved paths and loaded documents for a workspace.
type Context struct {
	Root      string
	Paths     Paths
	Config    *buildconfig.Config
	Workspace *manifest.Workspace
	Providers *manifest.Aggregator
	Drivers   *manifest.Aggregator
	Previous  *buildconfig.Config // nil before the first successful run

	log zerolog.Logger
}

// Load resolves workspace paths and loads every input of a run. Nothing is
// written; any missing or malformed required file aborts the load.
func Load(root string, opts Options) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	paths := ResolvePaths(root, opts.ConfigPath)
	log := opts.Logger.With().Str("root", root).Logger()

	cfg, err := buildconfig.Load(paths.Config)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", paths.Config).
		Int("providers", len(cfg.Providers)).Int("drivers", len(cfg.Drivers)).
		Msg("build config loaded")

	ws, err := manifest.LoadWorkspace(paths.Workspace)
	if err != nil {
		return nil, err
	}
	providers, err := manifest.LoadAggregator(paths.Providers)
	if err != nil {
		return nil, err
	}
	drivers, err := manifest.LoadAggregator(paths.Drivers)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("members", len(ws.Members())).Msg("manifests loaded")

	store := snapshot.Store{Path: paths.Snapshot, DriverListPath: paths.DriverList}
	prev, err := store.Load()
	if err != nil {
		return nil, err
	}
	if prev == nil && opts.RequireSnapshot {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotRequired, paths.Snapshot)
	}
	if prev == nil {
		log.Debug().Msg("no snapshot; treating prior state as empty")
	}

	return &Context{
		Root:      root,
		Paths:     paths,
		Config:    cfg,
		Workspace: ws,
		Providers: providers,
		Drivers:   drivers,
		Previous:  prev,
		log:       log,
	}, nil
}

// State exposes the loaded manifests to the reconciler.
func (c *Context) State() reconcile.State {
	return reconcile.State{Workspace: c.Workspace, Providers: c.Providers, Drivers: c.Drivers}
}

// Snapshots returns the snapshot store for this workspace.
func (c *Context) Snapshots() snapshot.Store {
	return snapshot.Store{Path: c.Paths.Snapshot, DriverListPath: c.Paths.DriverList}
}

// Plan computes the reconciliation plan without modifying anything.
func (c *Context) Plan(strategy reconcile.Strategy) (*reconcile.Plan, error) {
	plan, err := reconcile.Compute(strategy, c.Config, c.Previous, c.State())
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("strategy", string(strategy)).
		Int("member_adds", len(plan.Members.Add)).Int("member_removes", len(plan.Members.Remove)).
		Msg("plan computed")
	return plan, nil
}

// Save writes the three manifests as one staged commit.
func (c *Context) Save() error {
	docs := make([][]byte, 0, 3)
	for _, enc := range []func() ([]byte, error){c.Workspace.Encode, c.Providers.Encode, c.Drivers.Encode} {
		data, err := enc()
		if err != nil {
			return err
		}
		docs = append(docs, data)
	}
	st := newStage()
	for i, path := range c.Paths.Manifests() {
		st.add(path, docs[i])
	}
	if err := st.commit(); err != nil {
		return err
	}
	c.log.Debug().Strs("files", c.Paths.Manifests()).Msg("manifests written")
	return nil
}

// Step is called after each file a Sync writes.
type Step func(path string)

// Sync computes the plan, patches the manifests, writes them, and only then
// commits the configuration as the new snapshot. step may be nil.
func (c *Context) Sync(strategy reconcile.Strategy, step Step) (*reconcile.Plan, error) {
	plan, err := c.Plan(strategy)
	if err != nil {
		return nil, err
	}
	reconcile.Apply(plan, c.State())
	if err := c.Save(); err != nil {
		return nil, err
	}
	if step != nil {
		for _, p := range c.Paths.Manifests() {
			step(p)
		}
	}
	if err := c.Snapshots().Commit(c.Config); err != nil {
		return nil, err
	}
	if step != nil {
		step(c.Paths.Snapshot)
		step(c.Paths.DriverList)
	}
	c.Previous = c.Config.Clone()
	c.log.Info().Str("strategy", string(strategy)).
		Strs("providers", c.Config.Providers).Strs("drivers", c.Config.Drivers).
		Msg("workspace reconciled")
	return plan, nil
}
