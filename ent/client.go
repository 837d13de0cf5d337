// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dparikh/prepdrill/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dparikh/prepdrill/ent/attemptevent"
	"github.com/dparikh/prepdrill/ent/questionitem"
	"github.com/dparikh/prepdrill/ent/sequenceevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// QuestionItem is the client for interacting with the QuestionItem builders.
	QuestionItem *QuestionItemClient
	// SequenceEvent is the client for interacting with the SequenceEvent builders.
	SequenceEvent *SequenceEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.QuestionItem = NewQuestionItemClient(c.config)
	c.SequenceEvent = NewSequenceEventClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		AttemptEvent:  NewAttemptEventClient(cfg),
		QuestionItem:  NewQuestionItemClient(cfg),
		SequenceEvent: NewSequenceEventClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AttemptEvent:  NewAttemptEventClient(cfg),
		QuestionItem:  NewQuestionItemClient(cfg),
		SequenceEvent: NewSequenceEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
	c.AttemptEvent.Use(hooks...)
	c.QuestionItem.Use(hooks...)
	c.SequenceEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptEvent.Intercept(interceptors...)
	c.QuestionItem.Intercept(interceptors...)
	c.SequenceEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *QuestionItemMutation:
		return c.QuestionItem.mutate(ctx, m)
	case *SequenceEventMutation:
		return c.SequenceEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// QuestionItemClient is a client for the QuestionItem schema.
type QuestionItemClient struct {
	config
}

// NewQuestionItemClient returns a client for the QuestionItem from the given config.
func NewQuestionItemClient(c config) *QuestionItemClient {
	return &QuestionItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionitem.Hooks(f(g(h())))`.
func (c *QuestionItemClient) Use(hooks ...Hook) {
	c.hooks.QuestionItem = append(c.hooks.QuestionItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionitem.Intercept(f(g(h())))`.
func (c *QuestionItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionItem = append(c.inters.QuestionItem, interceptors...)
}

// Create returns a builder for creating a QuestionItem entity.
func (c *QuestionItemClient) Create() *QuestionItemCreate {
	mutation := newQuestionItemMutation(c.config, OpCreate)
	return &QuestionItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionItem entities.
func (c *QuestionItemClient) CreateBulk(builders ...*QuestionItemCreate) *QuestionItemCreateBulk {
	return &QuestionItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionItemClient) MapCreateBulk(slice any, setFunc func(*QuestionItemCreate, int)) *QuestionItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionItemCreateBulk{err: fmt.Errorf("calling to QuestionItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionItem.
func (c *QuestionItemClient) Update() *QuestionItemUpdate {
	mutation := newQuestionItemMutation(c.config, OpUpdate)
	return &QuestionItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionItemClient) UpdateOne(_m *QuestionItem) *QuestionItemUpdateOne {
	mutation := newQuestionItemMutation(c.config, OpUpdateOne, withQuestionItem(_m))
	return &QuestionItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionItemClient) UpdateOneID(id int) *QuestionItemUpdateOne {
	mutation := newQuestionItemMutation(c.config, OpUpdateOne, withQuestionItemID(id))
	return &QuestionItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionItem.
func (c *QuestionItemClient) Delete() *QuestionItemDelete {
	mutation := newQuestionItemMutation(c.config, OpDelete)
	return &QuestionItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionItemClient) DeleteOne(_m *QuestionItem) *QuestionItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionItemClient) DeleteOneID(id int) *QuestionItemDeleteOne {
	builder := c.Delete().Where(questionitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionItemDeleteOne{builder}
}

// Query returns a query builder for QuestionItem.
func (c *QuestionItemClient) Query() *QuestionItemQuery {
	return &QuestionItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionItem},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionItem entity by its id.
func (c *QuestionItemClient) Get(ctx context.Context, id int) (*QuestionItem, error) {
	return c.Query().Where(questionitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionItemClient) GetX(ctx context.Context, id int) *QuestionItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionItemClient) Hooks() []Hook {
	return c.hooks.QuestionItem
}

// Interceptors returns the client interceptors.
func (c *QuestionItemClient) Interceptors() []Interceptor {
	return c.inters.QuestionItem
}

func (c *QuestionItemClient) mutate(ctx context.Context, m *QuestionItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionItem mutation op: %q", m.Op())
	}
}

// SequenceEventClient is a client for the SequenceEvent schema.
type SequenceEventClient struct {
	config
}

// NewSequenceEventClient returns a client for the SequenceEvent from the given config.
func NewSequenceEventClient(c config) *SequenceEventClient {
	return &SequenceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sequenceevent.Hooks(f(g(h())))`.
func (c *SequenceEventClient) Use(hooks ...Hook) {
	c.hooks.SequenceEvent = append(c.hooks.SequenceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sequenceevent.Intercept(f(g(h())))`.
func (c *SequenceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SequenceEvent = append(c.inters.SequenceEvent, interceptors...)
}

// Create returns a builder for creating a SequenceEvent entity.
func (c *SequenceEventClient) Create() *SequenceEventCreate {
	mutation := newSequenceEventMutation(c.config, OpCreate)
	return &SequenceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SequenceEvent entities.
func (c *SequenceEventClient) CreateBulk(builders ...*SequenceEventCreate) *SequenceEventCreateBulk {
	return &SequenceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SequenceEventClient) MapCreateBulk(slice any, setFunc func(*SequenceEventCreate, int)) *SequenceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SequenceEventCreateBulk{err: fmt.Errorf("calling to SequenceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SequenceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SequenceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SequenceEvent.
func (c *SequenceEventClient) Update() *SequenceEventUpdate {
	mutation := newSequenceEventMutation(c.config, OpUpdate)
	return &SequenceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SequenceEventClient) UpdateOne(_m *SequenceEvent) *SequenceEventUpdateOne {
	mutation := newSequenceEventMutation(c.config, OpUpdateOne, withSequenceEvent(_m))
	return &SequenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SequenceEventClient) UpdateOneID(id int) *SequenceEventUpdateOne {
	mutation := newSequenceEventMutation(c.config, OpUpdateOne, withSequenceEventID(id))
	return &SequenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SequenceEvent.
func (c *SequenceEventClient) Delete() *SequenceEventDelete {
	mutation := newSequenceEventMutation(c.config, OpDelete)
	return &SequenceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SequenceEventClient) DeleteOne(_m *SequenceEvent) *SequenceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SequenceEventClient) DeleteOneID(id int) *SequenceEventDeleteOne {
	builder := c.Delete().Where(sequenceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SequenceEventDeleteOne{builder}
}

// Query returns a query builder for SequenceEvent.
func (c *SequenceEventClient) Query() *SequenceEventQuery {
	return &SequenceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSequenceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SequenceEvent entity by its id.
func (c *SequenceEventClient) Get(ctx context.Context, id int) (*SequenceEvent, error) {
	return c.Query().Where(sequenceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SequenceEventClient) GetX(ctx context.Context, id int) *SequenceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SequenceEventClient) Hooks() []Hook {
	return c.hooks.SequenceEvent
}

// Interceptors returns the client interceptors.
func (c *SequenceEventClient) Interceptors() []Interceptor {
	return c.inters.SequenceEvent
}

func (c *SequenceEventClient) mutate(ctx context.Context, m *SequenceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SequenceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SequenceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SequenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SequenceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SequenceEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, QuestionItem, SequenceEvent []ent.Hook
	}
	inters struct {
		AttemptEvent, QuestionItem, SequenceEvent []ent.Interceptor
	}
)
