// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/selah-app/selah/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/selah-app/selah/ent/actionevent"
	"github.com/selah-app/selah/ent/profile"
	"github.com/selah-app/selah/ent/questionprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActionEvent is the client for interacting with the ActionEvent builders.
	ActionEvent *ActionEventClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// QuestionProgress is the client for interacting with the QuestionProgress builders.
	QuestionProgress *QuestionProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActionEvent = NewActionEventClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.QuestionProgress = NewQuestionProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ActionEvent:      NewActionEventClient(cfg),
		Profile:          NewProfileClient(cfg),
		QuestionProgress: NewQuestionProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ActionEvent:      NewActionEventClient(cfg),
		Profile:          NewProfileClient(cfg),
		QuestionProgress: NewQuestionProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActionEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ActionEvent.Use(hooks...)
	c.Profile.Use(hooks...)
	c.QuestionProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ActionEvent.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.QuestionProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActionEventMutation:
		return c.ActionEvent.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *QuestionProgressMutation:
		return c.QuestionProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActionEventClient is a client for the ActionEvent schema.
type ActionEventClient struct {
	config
}

// NewActionEventClient returns a client for the ActionEvent from the given config.
func NewActionEventClient(c config) *ActionEventClient {
	return &ActionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionevent.Hooks(f(g(h())))`.
func (c *ActionEventClient) Use(hooks ...Hook) {
	c.hooks.ActionEvent = append(c.hooks.ActionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionevent.Intercept(f(g(h())))`.
func (c *ActionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionEvent = append(c.inters.ActionEvent, interceptors...)
}

// Create returns a builder for creating a ActionEvent entity.
func (c *ActionEventClient) Create() *ActionEventCreate {
	mutation := newActionEventMutation(c.config, OpCreate)
	return &ActionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionEvent entities.
func (c *ActionEventClient) CreateBulk(builders ...*ActionEventCreate) *ActionEventCreateBulk {
	return &ActionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionEventClient) MapCreateBulk(slice any, setFunc func(*ActionEventCreate, int)) *ActionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionEventCreateBulk{err: fmt.Errorf("calling to ActionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionEvent.
func (c *ActionEventClient) Update() *ActionEventUpdate {
	mutation := newActionEventMutation(c.config, OpUpdate)
	return &ActionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionEventClient) UpdateOne(_m *ActionEvent) *ActionEventUpdateOne {
	mutation := newActionEventMutation(c.config, OpUpdateOne, withActionEvent(_m))
	return &ActionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionEventClient) UpdateOneID(id int) *ActionEventUpdateOne {
	mutation := newActionEventMutation(c.config, OpUpdateOne, withActionEventID(id))
	return &ActionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionEvent.
func (c *ActionEventClient) Delete() *ActionEventDelete {
	mutation := newActionEventMutation(c.config, OpDelete)
	return &ActionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionEventClient) DeleteOne(_m *ActionEvent) *ActionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionEventClient) DeleteOneID(id int) *ActionEventDeleteOne {
	builder := c.Delete().Where(actionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionEventDeleteOne{builder}
}

// Query returns a query builder for ActionEvent.
func (c *ActionEventClient) Query() *ActionEventQuery {
	return &ActionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionEvent entity by its id.
func (c *ActionEventClient) Get(ctx context.Context, id int) (*ActionEvent, error) {
	return c.Query().Where(actionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionEventClient) GetX(ctx context.Context, id int) *ActionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActionEventClient) Hooks() []Hook {
	return c.hooks.ActionEvent
}

// Interceptors returns the client interceptors.
func (c *ActionEventClient) Interceptors() []Interceptor {
	return c.inters.ActionEvent
}

func (c *ActionEventClient) mutate(ctx context.Context, m *ActionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionEvent mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// QuestionProgressClient is a client for the QuestionProgress schema.
type QuestionProgressClient struct {
	config
}

// NewQuestionProgressClient returns a client for the QuestionProgress from the given config.
func NewQuestionProgressClient(c config) *QuestionProgressClient {
	return &QuestionProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionprogress.Hooks(f(g(h())))`.
func (c *QuestionProgressClient) Use(hooks ...Hook) {
	c.hooks.QuestionProgress = append(c.hooks.QuestionProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionprogress.Intercept(f(g(h())))`.
func (c *QuestionProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionProgress = append(c.inters.QuestionProgress, interceptors...)
}

// Create returns a builder for creating a QuestionProgress entity.
func (c *QuestionProgressClient) Create() *QuestionProgressCreate {
	mutation := newQuestionProgressMutation(c.config, OpCreate)
	return &QuestionProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionProgress entities.
func (c *QuestionProgressClient) CreateBulk(builders ...*QuestionProgressCreate) *QuestionProgressCreateBulk {
	return &QuestionProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionProgressClient) MapCreateBulk(slice any, setFunc func(*QuestionProgressCreate, int)) *QuestionProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionProgressCreateBulk{err: fmt.Errorf("calling to QuestionProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionProgress.
func (c *QuestionProgressClient) Update() *QuestionProgressUpdate {
	mutation := newQuestionProgressMutation(c.config, OpUpdate)
	return &QuestionProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionProgressClient) UpdateOne(_m *QuestionProgress) *QuestionProgressUpdateOne {
	mutation := newQuestionProgressMutation(c.config, OpUpdateOne, withQuestionProgress(_m))
	return &QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionProgressClient) UpdateOneID(id int) *QuestionProgressUpdateOne {
	mutation := newQuestionProgressMutation(c.config, OpUpdateOne, withQuestionProgressID(id))
	return &QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionProgress.
func (c *QuestionProgressClient) Delete() *QuestionProgressDelete {
	mutation := newQuestionProgressMutation(c.config, OpDelete)
	return &QuestionProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionProgressClient) DeleteOne(_m *QuestionProgress) *QuestionProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionProgressClient) DeleteOneID(id int) *QuestionProgressDeleteOne {
	builder := c.Delete().Where(questionprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionProgressDeleteOne{builder}
}

// Query returns a query builder for QuestionProgress.
func (c *QuestionProgressClient) Query() *QuestionProgressQuery {
	return &QuestionProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionProgress entity by its id.
func (c *QuestionProgressClient) Get(ctx context.Context, id int) (*QuestionProgress, error) {
	return c.Query().Where(questionprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionProgressClient) GetX(ctx context.Context, id int) *QuestionProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionProgressClient) Hooks() []Hook {
	return c.hooks.QuestionProgress
}

// Interceptors returns the client interceptors.
func (c *QuestionProgressClient) Interceptors() []Interceptor {
	return c.inters.QuestionProgress
}

func (c *QuestionProgressClient) mutate(ctx context.Context, m *QuestionProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActionEvent, Profile, QuestionProgress []ent.Hook
	}
	inters struct {
		ActionEvent, Profile, QuestionProgress []ent.Interceptor
	}
)
