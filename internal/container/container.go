package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"glastor/adapters/localstore"
	"glastor/adapters/memory"
	"glastor/adapters/postgres"
	"glastor/app"
	"glastor/domain/persona"
	"glastor/internal"
	"glastor/internal/config"
	"glastor/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Log    *internal.Logger

	// Infrastructure
	DB         *sqlx.DB
	localStore *localstore.Store

	// Stores
	FastStore ports.FastStore
	Secondary ports.AssignmentStore

	// Services
	Pool         *persona.Pool
	Testimonials *app.TestimonialService
	Reviews      *app.ReviewService
	Registry     *app.RegistryService
}

// New builds the full dependency graph from configuration. The secondary
// store is the Postgres adapter when DATABASE_URL is set and the null-object
// store otherwise; callers never probe for its presence.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Log:    internal.DefaultLogger,
		Pool:   persona.NewPool(),
	}

	if err := c.initFastStore(); err != nil {
		return nil, err
	}
	if err := c.initSecondary(); err != nil {
		c.CloseStores()
		return nil, err
	}

	clock := ports.SystemClock()
	c.Testimonials = app.NewTestimonialService(c.Pool, c.FastStore, c.Secondary, clock, c.Log)
	c.Reviews = app.NewReviewService(c.FastStore, clock)
	c.Registry = app.NewRegistryService(c.FastStore)

	return c, nil
}

func (c *Container) initFastStore() error {
	switch c.Config.Store.Driver {
	case "memory":
		c.FastStore = memory.NewFastStore()
	default:
		store, err := localstore.Open(c.Config.Store.Path, c.Log)
		if err != nil {
			return fmt.Errorf("failed to open fast store: %w", err)
		}
		c.localStore = store
		c.FastStore = store
	}
	return nil
}

func (c *Container) initSecondary() error {
	if c.Config.Database.URL == "" {
		c.Log.Info("no DATABASE_URL configured, cross-session reconciliation disabled")
		c.Secondary = memory.NewNoopAssignmentStore()
		return nil
	}

	db, err := sqlx.Connect("postgres", c.Config.Database.URL)
	if err != nil {
		// The secondary store is an accelerator, not a dependency: fall back
		// to fast-store-only operation instead of failing startup.
		c.Log.Warn("secondary store unavailable, continuing without it: %v", err)
		c.Secondary = memory.NewNoopAssignmentStore()
		return nil
	}

	c.DB = db
	c.Secondary = postgres.NewAssignmentRepository(db)
	return nil
}

// CloseStores releases store handles.
func (c *Container) CloseStores() {
	if c.localStore != nil {
		_ = c.localStore.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

// Close drains in-flight work and releases resources.
func (c *Container) Close() {
	if c.Testimonials != nil {
		c.Testimonials.Close()
	}
	c.CloseStores()
}
