// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/solacecommunity/agent-mesh-gateway/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
	"github.com/solacecommunity/agent-mesh-gateway/ent/feedback"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
	"github.com/solacecommunity/agent-mesh-gateway/ent/project"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schedulerlock"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
	"github.com/solacecommunity/agent-mesh-gateway/ent/taskevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/tokentransaction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatTask is the client for interacting with the ChatTask builders.
	ChatTask *ChatTaskClient
	// DocConversionCache is the client for interacting with the DocConversionCache builders.
	DocConversionCache *DocConversionCacheClient
	// Feedback is the client for interacting with the Feedback builders.
	Feedback *FeedbackClient
	// MonthlyUsage is the client for interacting with the MonthlyUsage builders.
	MonthlyUsage *MonthlyUsageClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// SSEEvent is the client for interacting with the SSEEvent builders.
	SSEEvent *SSEEventClient
	// ScheduledTask is the client for interacting with the ScheduledTask builders.
	ScheduledTask *ScheduledTaskClient
	// ScheduledTaskExecution is the client for interacting with the ScheduledTaskExecution builders.
	ScheduledTaskExecution *ScheduledTaskExecutionClient
	// SchedulerLock is the client for interacting with the SchedulerLock builders.
	SchedulerLock *SchedulerLockClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskEvent is the client for interacting with the TaskEvent builders.
	TaskEvent *TaskEventClient
	// TokenTransaction is the client for interacting with the TokenTransaction builders.
	TokenTransaction *TokenTransactionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatTask = NewChatTaskClient(c.config)
	c.DocConversionCache = NewDocConversionCacheClient(c.config)
	c.Feedback = NewFeedbackClient(c.config)
	c.MonthlyUsage = NewMonthlyUsageClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.SSEEvent = NewSSEEventClient(c.config)
	c.ScheduledTask = NewScheduledTaskClient(c.config)
	c.ScheduledTaskExecution = NewScheduledTaskExecutionClient(c.config)
	c.SchedulerLock = NewSchedulerLockClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskEvent = NewTaskEventClient(c.config)
	c.TokenTransaction = NewTokenTransactionClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		ChatTask:               NewChatTaskClient(cfg),
		DocConversionCache:     NewDocConversionCacheClient(cfg),
		Feedback:               NewFeedbackClient(cfg),
		MonthlyUsage:           NewMonthlyUsageClient(cfg),
		Project:                NewProjectClient(cfg),
		SSEEvent:               NewSSEEventClient(cfg),
		ScheduledTask:          NewScheduledTaskClient(cfg),
		ScheduledTaskExecution: NewScheduledTaskExecutionClient(cfg),
		SchedulerLock:          NewSchedulerLockClient(cfg),
		Session:                NewSessionClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskEvent:              NewTaskEventClient(cfg),
		TokenTransaction:       NewTokenTransactionClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		ChatTask:               NewChatTaskClient(cfg),
		DocConversionCache:     NewDocConversionCacheClient(cfg),
		Feedback:               NewFeedbackClient(cfg),
		MonthlyUsage:           NewMonthlyUsageClient(cfg),
		Project:                NewProjectClient(cfg),
		SSEEvent:               NewSSEEventClient(cfg),
		ScheduledTask:          NewScheduledTaskClient(cfg),
		ScheduledTaskExecution: NewScheduledTaskExecutionClient(cfg),
		SchedulerLock:          NewSchedulerLockClient(cfg),
		Session:                NewSessionClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskEvent:              NewTaskEventClient(cfg),
		TokenTransaction:       NewTokenTransactionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatTask.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ChatTask, c.DocConversionCache, c.Feedback, c.MonthlyUsage, c.Project,
		c.SSEEvent, c.ScheduledTask, c.ScheduledTaskExecution, c.SchedulerLock,
		c.Session, c.Task, c.TaskEvent, c.TokenTransaction,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChatTask, c.DocConversionCache, c.Feedback, c.MonthlyUsage, c.Project,
		c.SSEEvent, c.ScheduledTask, c.ScheduledTaskExecution, c.SchedulerLock,
		c.Session, c.Task, c.TaskEvent, c.TokenTransaction,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatTaskMutation:
		return c.ChatTask.mutate(ctx, m)
	case *DocConversionCacheMutation:
		return c.DocConversionCache.mutate(ctx, m)
	case *FeedbackMutation:
		return c.Feedback.mutate(ctx, m)
	case *MonthlyUsageMutation:
		return c.MonthlyUsage.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SSEEventMutation:
		return c.SSEEvent.mutate(ctx, m)
	case *ScheduledTaskMutation:
		return c.ScheduledTask.mutate(ctx, m)
	case *ScheduledTaskExecutionMutation:
		return c.ScheduledTaskExecution.mutate(ctx, m)
	case *SchedulerLockMutation:
		return c.SchedulerLock.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskEventMutation:
		return c.TaskEvent.mutate(ctx, m)
	case *TokenTransactionMutation:
		return c.TokenTransaction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatTaskClient is a client for the ChatTask schema.
type ChatTaskClient struct {
	config
}

// NewChatTaskClient returns a client for the ChatTask from the given config.
func NewChatTaskClient(c config) *ChatTaskClient {
	return &ChatTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chattask.Hooks(f(g(h())))`.
func (c *ChatTaskClient) Use(hooks ...Hook) {
	c.hooks.ChatTask = append(c.hooks.ChatTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chattask.Intercept(f(g(h())))`.
func (c *ChatTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatTask = append(c.inters.ChatTask, interceptors...)
}

// Create returns a builder for creating a ChatTask entity.
func (c *ChatTaskClient) Create() *ChatTaskCreate {
	mutation := newChatTaskMutation(c.config, OpCreate)
	return &ChatTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatTask entities.
func (c *ChatTaskClient) CreateBulk(builders ...*ChatTaskCreate) *ChatTaskCreateBulk {
	return &ChatTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatTaskClient) MapCreateBulk(slice any, setFunc func(*ChatTaskCreate, int)) *ChatTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatTaskCreateBulk{err: fmt.Errorf("calling to ChatTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatTask.
func (c *ChatTaskClient) Update() *ChatTaskUpdate {
	mutation := newChatTaskMutation(c.config, OpUpdate)
	return &ChatTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatTaskClient) UpdateOne(_m *ChatTask) *ChatTaskUpdateOne {
	mutation := newChatTaskMutation(c.config, OpUpdateOne, withChatTask(_m))
	return &ChatTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatTaskClient) UpdateOneID(id string) *ChatTaskUpdateOne {
	mutation := newChatTaskMutation(c.config, OpUpdateOne, withChatTaskID(id))
	return &ChatTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatTask.
func (c *ChatTaskClient) Delete() *ChatTaskDelete {
	mutation := newChatTaskMutation(c.config, OpDelete)
	return &ChatTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatTaskClient) DeleteOne(_m *ChatTask) *ChatTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatTaskClient) DeleteOneID(id string) *ChatTaskDeleteOne {
	builder := c.Delete().Where(chattask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatTaskDeleteOne{builder}
}

// Query returns a query builder for ChatTask.
func (c *ChatTaskClient) Query() *ChatTaskQuery {
	return &ChatTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatTask entity by its id.
func (c *ChatTaskClient) Get(ctx context.Context, id string) (*ChatTask, error) {
	return c.Query().Where(chattask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatTaskClient) GetX(ctx context.Context, id string) *ChatTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ChatTask.
func (c *ChatTaskClient) QuerySession(_m *ChatTask) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chattask.Table, chattask.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chattask.SessionTable, chattask.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatTaskClient) Hooks() []Hook {
	return c.hooks.ChatTask
}

// Interceptors returns the client interceptors.
func (c *ChatTaskClient) Interceptors() []Interceptor {
	return c.inters.ChatTask
}

func (c *ChatTaskClient) mutate(ctx context.Context, m *ChatTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatTask mutation op: %q", m.Op())
	}
}

// DocConversionCacheClient is a client for the DocConversionCache schema.
type DocConversionCacheClient struct {
	config
}

// NewDocConversionCacheClient returns a client for the DocConversionCache from the given config.
func NewDocConversionCacheClient(c config) *DocConversionCacheClient {
	return &DocConversionCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `docconversioncache.Hooks(f(g(h())))`.
func (c *DocConversionCacheClient) Use(hooks ...Hook) {
	c.hooks.DocConversionCache = append(c.hooks.DocConversionCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `docconversioncache.Intercept(f(g(h())))`.
func (c *DocConversionCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocConversionCache = append(c.inters.DocConversionCache, interceptors...)
}

// Create returns a builder for creating a DocConversionCache entity.
func (c *DocConversionCacheClient) Create() *DocConversionCacheCreate {
	mutation := newDocConversionCacheMutation(c.config, OpCreate)
	return &DocConversionCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocConversionCache entities.
func (c *DocConversionCacheClient) CreateBulk(builders ...*DocConversionCacheCreate) *DocConversionCacheCreateBulk {
	return &DocConversionCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocConversionCacheClient) MapCreateBulk(slice any, setFunc func(*DocConversionCacheCreate, int)) *DocConversionCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocConversionCacheCreateBulk{err: fmt.Errorf("calling to DocConversionCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocConversionCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocConversionCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocConversionCache.
func (c *DocConversionCacheClient) Update() *DocConversionCacheUpdate {
	mutation := newDocConversionCacheMutation(c.config, OpUpdate)
	return &DocConversionCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocConversionCacheClient) UpdateOne(_m *DocConversionCache) *DocConversionCacheUpdateOne {
	mutation := newDocConversionCacheMutation(c.config, OpUpdateOne, withDocConversionCache(_m))
	return &DocConversionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocConversionCacheClient) UpdateOneID(id int) *DocConversionCacheUpdateOne {
	mutation := newDocConversionCacheMutation(c.config, OpUpdateOne, withDocConversionCacheID(id))
	return &DocConversionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocConversionCache.
func (c *DocConversionCacheClient) Delete() *DocConversionCacheDelete {
	mutation := newDocConversionCacheMutation(c.config, OpDelete)
	return &DocConversionCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocConversionCacheClient) DeleteOne(_m *DocConversionCache) *DocConversionCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocConversionCacheClient) DeleteOneID(id int) *DocConversionCacheDeleteOne {
	builder := c.Delete().Where(docconversioncache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocConversionCacheDeleteOne{builder}
}

// Query returns a query builder for DocConversionCache.
func (c *DocConversionCacheClient) Query() *DocConversionCacheQuery {
	return &DocConversionCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocConversionCache},
		inters: c.Interceptors(),
	}
}

// Get returns a DocConversionCache entity by its id.
func (c *DocConversionCacheClient) Get(ctx context.Context, id int) (*DocConversionCache, error) {
	return c.Query().Where(docconversioncache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocConversionCacheClient) GetX(ctx context.Context, id int) *DocConversionCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocConversionCacheClient) Hooks() []Hook {
	return c.hooks.DocConversionCache
}

// Interceptors returns the client interceptors.
func (c *DocConversionCacheClient) Interceptors() []Interceptor {
	return c.inters.DocConversionCache
}

func (c *DocConversionCacheClient) mutate(ctx context.Context, m *DocConversionCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocConversionCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocConversionCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocConversionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocConversionCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocConversionCache mutation op: %q", m.Op())
	}
}

// FeedbackClient is a client for the Feedback schema.
type FeedbackClient struct {
	config
}

// NewFeedbackClient returns a client for the Feedback from the given config.
func NewFeedbackClient(c config) *FeedbackClient {
	return &FeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedback.Hooks(f(g(h())))`.
func (c *FeedbackClient) Use(hooks ...Hook) {
	c.hooks.Feedback = append(c.hooks.Feedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedback.Intercept(f(g(h())))`.
func (c *FeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.Feedback = append(c.inters.Feedback, interceptors...)
}

// Create returns a builder for creating a Feedback entity.
func (c *FeedbackClient) Create() *FeedbackCreate {
	mutation := newFeedbackMutation(c.config, OpCreate)
	return &FeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Feedback entities.
func (c *FeedbackClient) CreateBulk(builders ...*FeedbackCreate) *FeedbackCreateBulk {
	return &FeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackClient) MapCreateBulk(slice any, setFunc func(*FeedbackCreate, int)) *FeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackCreateBulk{err: fmt.Errorf("calling to FeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Feedback.
func (c *FeedbackClient) Update() *FeedbackUpdate {
	mutation := newFeedbackMutation(c.config, OpUpdate)
	return &FeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackClient) UpdateOne(_m *Feedback) *FeedbackUpdateOne {
	mutation := newFeedbackMutation(c.config, OpUpdateOne, withFeedback(_m))
	return &FeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackClient) UpdateOneID(id string) *FeedbackUpdateOne {
	mutation := newFeedbackMutation(c.config, OpUpdateOne, withFeedbackID(id))
	return &FeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Feedback.
func (c *FeedbackClient) Delete() *FeedbackDelete {
	mutation := newFeedbackMutation(c.config, OpDelete)
	return &FeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackClient) DeleteOne(_m *Feedback) *FeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackClient) DeleteOneID(id string) *FeedbackDeleteOne {
	builder := c.Delete().Where(feedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackDeleteOne{builder}
}

// Query returns a query builder for Feedback.
func (c *FeedbackClient) Query() *FeedbackQuery {
	return &FeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a Feedback entity by its id.
func (c *FeedbackClient) Get(ctx context.Context, id string) (*Feedback, error) {
	return c.Query().Where(feedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackClient) GetX(ctx context.Context, id string) *Feedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackClient) Hooks() []Hook {
	return c.hooks.Feedback
}

// Interceptors returns the client interceptors.
func (c *FeedbackClient) Interceptors() []Interceptor {
	return c.inters.Feedback
}

func (c *FeedbackClient) mutate(ctx context.Context, m *FeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Feedback mutation op: %q", m.Op())
	}
}

// MonthlyUsageClient is a client for the MonthlyUsage schema.
type MonthlyUsageClient struct {
	config
}

// NewMonthlyUsageClient returns a client for the MonthlyUsage from the given config.
func NewMonthlyUsageClient(c config) *MonthlyUsageClient {
	return &MonthlyUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monthlyusage.Hooks(f(g(h())))`.
func (c *MonthlyUsageClient) Use(hooks ...Hook) {
	c.hooks.MonthlyUsage = append(c.hooks.MonthlyUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monthlyusage.Intercept(f(g(h())))`.
func (c *MonthlyUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonthlyUsage = append(c.inters.MonthlyUsage, interceptors...)
}

// Create returns a builder for creating a MonthlyUsage entity.
func (c *MonthlyUsageClient) Create() *MonthlyUsageCreate {
	mutation := newMonthlyUsageMutation(c.config, OpCreate)
	return &MonthlyUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonthlyUsage entities.
func (c *MonthlyUsageClient) CreateBulk(builders ...*MonthlyUsageCreate) *MonthlyUsageCreateBulk {
	return &MonthlyUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonthlyUsageClient) MapCreateBulk(slice any, setFunc func(*MonthlyUsageCreate, int)) *MonthlyUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonthlyUsageCreateBulk{err: fmt.Errorf("calling to MonthlyUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonthlyUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonthlyUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonthlyUsage.
func (c *MonthlyUsageClient) Update() *MonthlyUsageUpdate {
	mutation := newMonthlyUsageMutation(c.config, OpUpdate)
	return &MonthlyUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonthlyUsageClient) UpdateOne(_m *MonthlyUsage) *MonthlyUsageUpdateOne {
	mutation := newMonthlyUsageMutation(c.config, OpUpdateOne, withMonthlyUsage(_m))
	return &MonthlyUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonthlyUsageClient) UpdateOneID(id int) *MonthlyUsageUpdateOne {
	mutation := newMonthlyUsageMutation(c.config, OpUpdateOne, withMonthlyUsageID(id))
	return &MonthlyUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonthlyUsage.
func (c *MonthlyUsageClient) Delete() *MonthlyUsageDelete {
	mutation := newMonthlyUsageMutation(c.config, OpDelete)
	return &MonthlyUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonthlyUsageClient) DeleteOne(_m *MonthlyUsage) *MonthlyUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonthlyUsageClient) DeleteOneID(id int) *MonthlyUsageDeleteOne {
	builder := c.Delete().Where(monthlyusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonthlyUsageDeleteOne{builder}
}

// Query returns a query builder for MonthlyUsage.
func (c *MonthlyUsageClient) Query() *MonthlyUsageQuery {
	return &MonthlyUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonthlyUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a MonthlyUsage entity by its id.
func (c *MonthlyUsageClient) Get(ctx context.Context, id int) (*MonthlyUsage, error) {
	return c.Query().Where(monthlyusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonthlyUsageClient) GetX(ctx context.Context, id int) *MonthlyUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MonthlyUsageClient) Hooks() []Hook {
	return c.hooks.MonthlyUsage
}

// Interceptors returns the client interceptors.
func (c *MonthlyUsageClient) Interceptors() []Interceptor {
	return c.inters.MonthlyUsage
}

func (c *MonthlyUsageClient) mutate(ctx context.Context, m *MonthlyUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonthlyUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonthlyUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonthlyUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonthlyUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonthlyUsage mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SSEEventClient is a client for the SSEEvent schema.
type SSEEventClient struct {
	config
}

// NewSSEEventClient returns a client for the SSEEvent from the given config.
func NewSSEEventClient(c config) *SSEEventClient {
	return &SSEEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sseevent.Hooks(f(g(h())))`.
func (c *SSEEventClient) Use(hooks ...Hook) {
	c.hooks.SSEEvent = append(c.hooks.SSEEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sseevent.Intercept(f(g(h())))`.
func (c *SSEEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SSEEvent = append(c.inters.SSEEvent, interceptors...)
}

// Create returns a builder for creating a SSEEvent entity.
func (c *SSEEventClient) Create() *SSEEventCreate {
	mutation := newSSEEventMutation(c.config, OpCreate)
	return &SSEEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SSEEvent entities.
func (c *SSEEventClient) CreateBulk(builders ...*SSEEventCreate) *SSEEventCreateBulk {
	return &SSEEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SSEEventClient) MapCreateBulk(slice any, setFunc func(*SSEEventCreate, int)) *SSEEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SSEEventCreateBulk{err: fmt.Errorf("calling to SSEEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SSEEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SSEEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SSEEvent.
func (c *SSEEventClient) Update() *SSEEventUpdate {
	mutation := newSSEEventMutation(c.config, OpUpdate)
	return &SSEEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SSEEventClient) UpdateOne(_m *SSEEvent) *SSEEventUpdateOne {
	mutation := newSSEEventMutation(c.config, OpUpdateOne, withSSEEvent(_m))
	return &SSEEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SSEEventClient) UpdateOneID(id int) *SSEEventUpdateOne {
	mutation := newSSEEventMutation(c.config, OpUpdateOne, withSSEEventID(id))
	return &SSEEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SSEEvent.
func (c *SSEEventClient) Delete() *SSEEventDelete {
	mutation := newSSEEventMutation(c.config, OpDelete)
	return &SSEEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SSEEventClient) DeleteOne(_m *SSEEvent) *SSEEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SSEEventClient) DeleteOneID(id int) *SSEEventDeleteOne {
	builder := c.Delete().Where(sseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SSEEventDeleteOne{builder}
}

// Query returns a query builder for SSEEvent.
func (c *SSEEventClient) Query() *SSEEventQuery {
	return &SSEEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSSEEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SSEEvent entity by its id.
func (c *SSEEventClient) Get(ctx context.Context, id int) (*SSEEvent, error) {
	return c.Query().Where(sseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SSEEventClient) GetX(ctx context.Context, id int) *SSEEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SSEEvent.
func (c *SSEEventClient) QuerySession(_m *SSEEvent) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sseevent.Table, sseevent.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sseevent.SessionTable, sseevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SSEEventClient) Hooks() []Hook {
	return c.hooks.SSEEvent
}

// Interceptors returns the client interceptors.
func (c *SSEEventClient) Interceptors() []Interceptor {
	return c.inters.SSEEvent
}

func (c *SSEEventClient) mutate(ctx context.Context, m *SSEEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SSEEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SSEEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SSEEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SSEEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SSEEvent mutation op: %q", m.Op())
	}
}

// ScheduledTaskClient is a client for the ScheduledTask schema.
type ScheduledTaskClient struct {
	config
}

// NewScheduledTaskClient returns a client for the ScheduledTask from the given config.
func NewScheduledTaskClient(c config) *ScheduledTaskClient {
	return &ScheduledTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledtask.Hooks(f(g(h())))`.
func (c *ScheduledTaskClient) Use(hooks ...Hook) {
	c.hooks.ScheduledTask = append(c.hooks.ScheduledTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledtask.Intercept(f(g(h())))`.
func (c *ScheduledTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledTask = append(c.inters.ScheduledTask, interceptors...)
}

// Create returns a builder for creating a ScheduledTask entity.
func (c *ScheduledTaskClient) Create() *ScheduledTaskCreate {
	mutation := newScheduledTaskMutation(c.config, OpCreate)
	return &ScheduledTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledTask entities.
func (c *ScheduledTaskClient) CreateBulk(builders ...*ScheduledTaskCreate) *ScheduledTaskCreateBulk {
	return &ScheduledTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledTaskClient) MapCreateBulk(slice any, setFunc func(*ScheduledTaskCreate, int)) *ScheduledTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledTaskCreateBulk{err: fmt.Errorf("calling to ScheduledTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledTask.
func (c *ScheduledTaskClient) Update() *ScheduledTaskUpdate {
	mutation := newScheduledTaskMutation(c.config, OpUpdate)
	return &ScheduledTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledTaskClient) UpdateOne(_m *ScheduledTask) *ScheduledTaskUpdateOne {
	mutation := newScheduledTaskMutation(c.config, OpUpdateOne, withScheduledTask(_m))
	return &ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledTaskClient) UpdateOneID(id string) *ScheduledTaskUpdateOne {
	mutation := newScheduledTaskMutation(c.config, OpUpdateOne, withScheduledTaskID(id))
	return &ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledTask.
func (c *ScheduledTaskClient) Delete() *ScheduledTaskDelete {
	mutation := newScheduledTaskMutation(c.config, OpDelete)
	return &ScheduledTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledTaskClient) DeleteOne(_m *ScheduledTask) *ScheduledTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledTaskClient) DeleteOneID(id string) *ScheduledTaskDeleteOne {
	builder := c.Delete().Where(scheduledtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledTaskDeleteOne{builder}
}

// Query returns a query builder for ScheduledTask.
func (c *ScheduledTaskClient) Query() *ScheduledTaskQuery {
	return &ScheduledTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledTask entity by its id.
func (c *ScheduledTaskClient) Get(ctx context.Context, id string) (*ScheduledTask, error) {
	return c.Query().Where(scheduledtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledTaskClient) GetX(ctx context.Context, id string) *ScheduledTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutions queries the executions edge of a ScheduledTask.
func (c *ScheduledTaskClient) QueryExecutions(_m *ScheduledTask) *ScheduledTaskExecutionQuery {
	query := (&ScheduledTaskExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledtask.Table, scheduledtask.FieldID, id),
			sqlgraph.To(scheduledtaskexecution.Table, scheduledtaskexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scheduledtask.ExecutionsTable, scheduledtask.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduledTaskClient) Hooks() []Hook {
	return c.hooks.ScheduledTask
}

// Interceptors returns the client interceptors.
func (c *ScheduledTaskClient) Interceptors() []Interceptor {
	return c.inters.ScheduledTask
}

func (c *ScheduledTaskClient) mutate(ctx context.Context, m *ScheduledTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledTask mutation op: %q", m.Op())
	}
}

// ScheduledTaskExecutionClient is a client for the ScheduledTaskExecution schema.
type ScheduledTaskExecutionClient struct {
	config
}

// NewScheduledTaskExecutionClient returns a client for the ScheduledTaskExecution from the given config.
func NewScheduledTaskExecutionClient(c config) *ScheduledTaskExecutionClient {
	return &ScheduledTaskExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledtaskexecution.Hooks(f(g(h())))`.
func (c *ScheduledTaskExecutionClient) Use(hooks ...Hook) {
	c.hooks.ScheduledTaskExecution = append(c.hooks.ScheduledTaskExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledtaskexecution.Intercept(f(g(h())))`.
func (c *ScheduledTaskExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledTaskExecution = append(c.inters.ScheduledTaskExecution, interceptors...)
}

// Create returns a builder for creating a ScheduledTaskExecution entity.
func (c *ScheduledTaskExecutionClient) Create() *ScheduledTaskExecutionCreate {
	mutation := newScheduledTaskExecutionMutation(c.config, OpCreate)
	return &ScheduledTaskExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledTaskExecution entities.
func (c *ScheduledTaskExecutionClient) CreateBulk(builders ...*ScheduledTaskExecutionCreate) *ScheduledTaskExecutionCreateBulk {
	return &ScheduledTaskExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledTaskExecutionClient) MapCreateBulk(slice any, setFunc func(*ScheduledTaskExecutionCreate, int)) *ScheduledTaskExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledTaskExecutionCreateBulk{err: fmt.Errorf("calling to ScheduledTaskExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledTaskExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledTaskExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledTaskExecution.
func (c *ScheduledTaskExecutionClient) Update() *ScheduledTaskExecutionUpdate {
	mutation := newScheduledTaskExecutionMutation(c.config, OpUpdate)
	return &ScheduledTaskExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledTaskExecutionClient) UpdateOne(_m *ScheduledTaskExecution) *ScheduledTaskExecutionUpdateOne {
	mutation := newScheduledTaskExecutionMutation(c.config, OpUpdateOne, withScheduledTaskExecution(_m))
	return &ScheduledTaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledTaskExecutionClient) UpdateOneID(id string) *ScheduledTaskExecutionUpdateOne {
	mutation := newScheduledTaskExecutionMutation(c.config, OpUpdateOne, withScheduledTaskExecutionID(id))
	return &ScheduledTaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledTaskExecution.
func (c *ScheduledTaskExecutionClient) Delete() *ScheduledTaskExecutionDelete {
	mutation := newScheduledTaskExecutionMutation(c.config, OpDelete)
	return &ScheduledTaskExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledTaskExecutionClient) DeleteOne(_m *ScheduledTaskExecution) *ScheduledTaskExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledTaskExecutionClient) DeleteOneID(id string) *ScheduledTaskExecutionDeleteOne {
	builder := c.Delete().Where(scheduledtaskexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledTaskExecutionDeleteOne{builder}
}

// Query returns a query builder for ScheduledTaskExecution.
func (c *ScheduledTaskExecutionClient) Query() *ScheduledTaskExecutionQuery {
	return &ScheduledTaskExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledTaskExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledTaskExecution entity by its id.
func (c *ScheduledTaskExecutionClient) Get(ctx context.Context, id string) (*ScheduledTaskExecution, error) {
	return c.Query().Where(scheduledtaskexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledTaskExecutionClient) GetX(ctx context.Context, id string) *ScheduledTaskExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScheduledTask queries the scheduled_task edge of a ScheduledTaskExecution.
func (c *ScheduledTaskExecutionClient) QueryScheduledTask(_m *ScheduledTaskExecution) *ScheduledTaskQuery {
	query := (&ScheduledTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledtaskexecution.Table, scheduledtaskexecution.FieldID, id),
			sqlgraph.To(scheduledtask.Table, scheduledtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledtaskexecution.ScheduledTaskTable, scheduledtaskexecution.ScheduledTaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduledTaskExecutionClient) Hooks() []Hook {
	return c.hooks.ScheduledTaskExecution
}

// Interceptors returns the client interceptors.
func (c *ScheduledTaskExecutionClient) Interceptors() []Interceptor {
	return c.inters.ScheduledTaskExecution
}

func (c *ScheduledTaskExecutionClient) mutate(ctx context.Context, m *ScheduledTaskExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledTaskExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledTaskExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledTaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledTaskExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledTaskExecution mutation op: %q", m.Op())
	}
}

// SchedulerLockClient is a client for the SchedulerLock schema.
type SchedulerLockClient struct {
	config
}

// NewSchedulerLockClient returns a client for the SchedulerLock from the given config.
func NewSchedulerLockClient(c config) *SchedulerLockClient {
	return &SchedulerLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedulerlock.Hooks(f(g(h())))`.
func (c *SchedulerLockClient) Use(hooks ...Hook) {
	c.hooks.SchedulerLock = append(c.hooks.SchedulerLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedulerlock.Intercept(f(g(h())))`.
func (c *SchedulerLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchedulerLock = append(c.inters.SchedulerLock, interceptors...)
}

// Create returns a builder for creating a SchedulerLock entity.
func (c *SchedulerLockClient) Create() *SchedulerLockCreate {
	mutation := newSchedulerLockMutation(c.config, OpCreate)
	return &SchedulerLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchedulerLock entities.
func (c *SchedulerLockClient) CreateBulk(builders ...*SchedulerLockCreate) *SchedulerLockCreateBulk {
	return &SchedulerLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchedulerLockClient) MapCreateBulk(slice any, setFunc func(*SchedulerLockCreate, int)) *SchedulerLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchedulerLockCreateBulk{err: fmt.Errorf("calling to SchedulerLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchedulerLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchedulerLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchedulerLock.
func (c *SchedulerLockClient) Update() *SchedulerLockUpdate {
	mutation := newSchedulerLockMutation(c.config, OpUpdate)
	return &SchedulerLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchedulerLockClient) UpdateOne(_m *SchedulerLock) *SchedulerLockUpdateOne {
	mutation := newSchedulerLockMutation(c.config, OpUpdateOne, withSchedulerLock(_m))
	return &SchedulerLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchedulerLockClient) UpdateOneID(id int) *SchedulerLockUpdateOne {
	mutation := newSchedulerLockMutation(c.config, OpUpdateOne, withSchedulerLockID(id))
	return &SchedulerLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchedulerLock.
func (c *SchedulerLockClient) Delete() *SchedulerLockDelete {
	mutation := newSchedulerLockMutation(c.config, OpDelete)
	return &SchedulerLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchedulerLockClient) DeleteOne(_m *SchedulerLock) *SchedulerLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchedulerLockClient) DeleteOneID(id int) *SchedulerLockDeleteOne {
	builder := c.Delete().Where(schedulerlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchedulerLockDeleteOne{builder}
}

// Query returns a query builder for SchedulerLock.
func (c *SchedulerLockClient) Query() *SchedulerLockQuery {
	return &SchedulerLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchedulerLock},
		inters: c.Interceptors(),
	}
}

// Get returns a SchedulerLock entity by its id.
func (c *SchedulerLockClient) Get(ctx context.Context, id int) (*SchedulerLock, error) {
	return c.Query().Where(schedulerlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchedulerLockClient) GetX(ctx context.Context, id int) *SchedulerLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SchedulerLockClient) Hooks() []Hook {
	return c.hooks.SchedulerLock
}

// Interceptors returns the client interceptors.
func (c *SchedulerLockClient) Interceptors() []Interceptor {
	return c.inters.SchedulerLock
}

func (c *SchedulerLockClient) mutate(ctx context.Context, m *SchedulerLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchedulerLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchedulerLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchedulerLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchedulerLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchedulerLock mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChatTasks queries the chat_tasks edge of a Session.
func (c *SessionClient) QueryChatTasks(_m *Session) *ChatTaskQuery {
	query := (&ChatTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(chattask.Table, chattask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.ChatTasksTable, session.ChatTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySseEvents queries the sse_events edge of a Session.
func (c *SessionClient) QuerySseEvents(_m *Session) *SSEEventQuery {
	query := (&SSEEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(sseevent.Table, sseevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.SseEventsTable, session.SseEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Task.
func (c *TaskClient) QueryEvents(_m *Task) *TaskEventQuery {
	query := (&TaskEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskevent.Table, taskevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EventsTable, task.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskEventClient is a client for the TaskEvent schema.
type TaskEventClient struct {
	config
}

// NewTaskEventClient returns a client for the TaskEvent from the given config.
func NewTaskEventClient(c config) *TaskEventClient {
	return &TaskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskevent.Hooks(f(g(h())))`.
func (c *TaskEventClient) Use(hooks ...Hook) {
	c.hooks.TaskEvent = append(c.hooks.TaskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskevent.Intercept(f(g(h())))`.
func (c *TaskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskEvent = append(c.inters.TaskEvent, interceptors...)
}

// Create returns a builder for creating a TaskEvent entity.
func (c *TaskEventClient) Create() *TaskEventCreate {
	mutation := newTaskEventMutation(c.config, OpCreate)
	return &TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskEvent entities.
func (c *TaskEventClient) CreateBulk(builders ...*TaskEventCreate) *TaskEventCreateBulk {
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskEventClient) MapCreateBulk(slice any, setFunc func(*TaskEventCreate, int)) *TaskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskEventCreateBulk{err: fmt.Errorf("calling to TaskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskEvent.
func (c *TaskEventClient) Update() *TaskEventUpdate {
	mutation := newTaskEventMutation(c.config, OpUpdate)
	return &TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskEventClient) UpdateOne(_m *TaskEvent) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEvent(_m))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskEventClient) UpdateOneID(id string) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEventID(id))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskEvent.
func (c *TaskEventClient) Delete() *TaskEventDelete {
	mutation := newTaskEventMutation(c.config, OpDelete)
	return &TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskEventClient) DeleteOne(_m *TaskEvent) *TaskEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskEventClient) DeleteOneID(id string) *TaskEventDeleteOne {
	builder := c.Delete().Where(taskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskEventDeleteOne{builder}
}

// Query returns a query builder for TaskEvent.
func (c *TaskEventClient) Query() *TaskEventQuery {
	return &TaskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskEvent entity by its id.
func (c *TaskEventClient) Get(ctx context.Context, id string) (*TaskEvent, error) {
	return c.Query().Where(taskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskEventClient) GetX(ctx context.Context, id string) *TaskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskEvent.
func (c *TaskEventClient) QueryTask(_m *TaskEvent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskevent.Table, taskevent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskevent.TaskTable, taskevent.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskEventClient) Hooks() []Hook {
	return c.hooks.TaskEvent
}

// Interceptors returns the client interceptors.
func (c *TaskEventClient) Interceptors() []Interceptor {
	return c.inters.TaskEvent
}

func (c *TaskEventClient) mutate(ctx context.Context, m *TaskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskEvent mutation op: %q", m.Op())
	}
}

// TokenTransactionClient is a client for the TokenTransaction schema.
type TokenTransactionClient struct {
	config
}

// NewTokenTransactionClient returns a client for the TokenTransaction from the given config.
func NewTokenTransactionClient(c config) *TokenTransactionClient {
	return &TokenTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokentransaction.Hooks(f(g(h())))`.
func (c *TokenTransactionClient) Use(hooks ...Hook) {
	c.hooks.TokenTransaction = append(c.hooks.TokenTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokentransaction.Intercept(f(g(h())))`.
func (c *TokenTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenTransaction = append(c.inters.TokenTransaction, interceptors...)
}

// Create returns a builder for creating a TokenTransaction entity.
func (c *TokenTransactionClient) Create() *TokenTransactionCreate {
	mutation := newTokenTransactionMutation(c.config, OpCreate)
	return &TokenTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenTransaction entities.
func (c *TokenTransactionClient) CreateBulk(builders ...*TokenTransactionCreate) *TokenTransactionCreateBulk {
	return &TokenTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenTransactionClient) MapCreateBulk(slice any, setFunc func(*TokenTransactionCreate, int)) *TokenTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenTransactionCreateBulk{err: fmt.Errorf("calling to TokenTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenTransaction.
func (c *TokenTransactionClient) Update() *TokenTransactionUpdate {
	mutation := newTokenTransactionMutation(c.config, OpUpdate)
	return &TokenTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenTransactionClient) UpdateOne(_m *TokenTransaction) *TokenTransactionUpdateOne {
	mutation := newTokenTransactionMutation(c.config, OpUpdateOne, withTokenTransaction(_m))
	return &TokenTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenTransactionClient) UpdateOneID(id int) *TokenTransactionUpdateOne {
	mutation := newTokenTransactionMutation(c.config, OpUpdateOne, withTokenTransactionID(id))
	return &TokenTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenTransaction.
func (c *TokenTransactionClient) Delete() *TokenTransactionDelete {
	mutation := newTokenTransactionMutation(c.config, OpDelete)
	return &TokenTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenTransactionClient) DeleteOne(_m *TokenTransaction) *TokenTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenTransactionClient) DeleteOneID(id int) *TokenTransactionDeleteOne {
	builder := c.Delete().Where(tokentransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenTransactionDeleteOne{builder}
}

// Query returns a query builder for TokenTransaction.
func (c *TokenTransactionClient) Query() *TokenTransactionQuery {
	return &TokenTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenTransaction entity by its id.
func (c *TokenTransactionClient) Get(ctx context.Context, id int) (*TokenTransaction, error) {
	return c.Query().Where(tokentransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenTransactionClient) GetX(ctx context.Context, id int) *TokenTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenTransactionClient) Hooks() []Hook {
	return c.hooks.TokenTransaction
}

// Interceptors returns the client interceptors.
func (c *TokenTransactionClient) Interceptors() []Interceptor {
	return c.inters.TokenTransaction
}

func (c *TokenTransactionClient) mutate(ctx context.Context, m *TokenTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenTransaction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatTask, DocConversionCache, Feedback, MonthlyUsage, Project, SSEEvent,
		ScheduledTask, ScheduledTaskExecution, SchedulerLock, Session, Task, TaskEvent,
		TokenTransaction []ent.Hook
	}
	inters struct {
		ChatTask, DocConversionCache, Feedback, MonthlyUsage, Project, SSEEvent,
		ScheduledTask, ScheduledTaskExecution, SchedulerLock, Session, Task, TaskEvent,
		TokenTransaction []ent.Interceptor
	}
)
