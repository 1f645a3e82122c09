// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/subtitle-ai/zirnevis/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobCue is the client for interacting with the JobCue builders.
	JobCue *JobCueClient
	// JobGlossaryTerm is the client for interacting with the JobGlossaryTerm builders.
	JobGlossaryTerm *JobGlossaryTermClient
	// LLMRun is the client for interacting with the LLMRun builders.
	LLMRun *LLMRunClient
	// TMEntry is the client for interacting with the TMEntry builders.
	TMEntry *TMEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Job = NewJobClient(c.config)
	c.JobCue = NewJobCueClient(c.config)
	c.JobGlossaryTerm = NewJobGlossaryTermClient(c.config)
	c.LLMRun = NewLLMRunClient(c.config)
	c.TMEntry = NewTMEntryClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Job:             NewJobClient(cfg),
		JobCue:          NewJobCueClient(cfg),
		JobGlossaryTerm: NewJobGlossaryTermClient(cfg),
		LLMRun:          NewLLMRunClient(cfg),
		TMEntry:         NewTMEntryClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Job:             NewJobClient(cfg),
		JobCue:          NewJobCueClient(cfg),
		JobGlossaryTerm: NewJobGlossaryTermClient(cfg),
		LLMRun:          NewLLMRunClient(cfg),
		TMEntry:         NewTMEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Job.
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
	c.Job.Use(hooks...)
	c.JobCue.Use(hooks...)
	c.JobGlossaryTerm.Use(hooks...)
	c.LLMRun.Use(hooks...)
	c.TMEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Job.Intercept(interceptors...)
	c.JobCue.Intercept(interceptors...)
	c.JobGlossaryTerm.Intercept(interceptors...)
	c.LLMRun.Intercept(interceptors...)
	c.TMEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobCueMutation:
		return c.JobCue.mutate(ctx, m)
	case *JobGlossaryTermMutation:
		return c.JobGlossaryTerm.mutate(ctx, m)
	case *LLMRunMutation:
		return c.LLMRun.mutate(ctx, m)
	case *TMEntryMutation:
		return c.TMEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCues queries the cues edge of a Job.
func (c *JobClient) QueryCues(_m *Job) *JobCueQuery {
	query := (&JobCueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobcue.Table, jobcue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.CuesTable, job.CuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGlossaryTerms queries the glossary_terms edge of a Job.
func (c *JobClient) QueryGlossaryTerms(_m *Job) *JobGlossaryTermQuery {
	query := (&JobGlossaryTermClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobglossaryterm.Table, jobglossaryterm.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.GlossaryTermsTable, job.GlossaryTermsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmRuns queries the llm_runs edge of a Job.
func (c *JobClient) QueryLlmRuns(_m *Job) *LLMRunQuery {
	query := (&LLMRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(llmrun.Table, llmrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.LlmRunsTable, job.LlmRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobCueClient is a client for the JobCue schema.
type JobCueClient struct {
	config
}

// NewJobCueClient returns a client for the JobCue from the given config.
func NewJobCueClient(c config) *JobCueClient {
	return &JobCueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobcue.Hooks(f(g(h())))`.
func (c *JobCueClient) Use(hooks ...Hook) {
	c.hooks.JobCue = append(c.hooks.JobCue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobcue.Intercept(f(g(h())))`.
func (c *JobCueClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobCue = append(c.inters.JobCue, interceptors...)
}

// Create returns a builder for creating a JobCue entity.
func (c *JobCueClient) Create() *JobCueCreate {
	mutation := newJobCueMutation(c.config, OpCreate)
	return &JobCueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobCue entities.
func (c *JobCueClient) CreateBulk(builders ...*JobCueCreate) *JobCueCreateBulk {
	return &JobCueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobCueClient) MapCreateBulk(slice any, setFunc func(*JobCueCreate, int)) *JobCueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCueCreateBulk{err: fmt.Errorf("calling to JobCueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobCue.
func (c *JobCueClient) Update() *JobCueUpdate {
	mutation := newJobCueMutation(c.config, OpUpdate)
	return &JobCueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobCueClient) UpdateOne(_m *JobCue) *JobCueUpdateOne {
	mutation := newJobCueMutation(c.config, OpUpdateOne, withJobCue(_m))
	return &JobCueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobCueClient) UpdateOneID(id string) *JobCueUpdateOne {
	mutation := newJobCueMutation(c.config, OpUpdateOne, withJobCueID(id))
	return &JobCueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobCue.
func (c *JobCueClient) Delete() *JobCueDelete {
	mutation := newJobCueMutation(c.config, OpDelete)
	return &JobCueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobCueClient) DeleteOne(_m *JobCue) *JobCueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobCueClient) DeleteOneID(id string) *JobCueDeleteOne {
	builder := c.Delete().Where(jobcue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobCueDeleteOne{builder}
}

// Query returns a query builder for JobCue.
func (c *JobCueClient) Query() *JobCueQuery {
	return &JobCueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobCue},
		inters: c.Interceptors(),
	}
}

// Get returns a JobCue entity by its id.
func (c *JobCueClient) Get(ctx context.Context, id string) (*JobCue, error) {
	return c.Query().Where(jobcue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobCueClient) GetX(ctx context.Context, id string) *JobCue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobCue.
func (c *JobCueClient) QueryJob(_m *JobCue) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobcue.Table, jobcue.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobcue.JobTable, jobcue.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmRuns queries the llm_runs edge of a JobCue.
func (c *JobCueClient) QueryLlmRuns(_m *JobCue) *LLMRunQuery {
	query := (&LLMRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobcue.Table, jobcue.FieldID, id),
			sqlgraph.To(llmrun.Table, llmrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobcue.LlmRunsTable, jobcue.LlmRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobCueClient) Hooks() []Hook {
	return c.hooks.JobCue
}

// Interceptors returns the client interceptors.
func (c *JobCueClient) Interceptors() []Interceptor {
	return c.inters.JobCue
}

func (c *JobCueClient) mutate(ctx context.Context, m *JobCueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobCueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobCueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobCueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobCue mutation op: %q", m.Op())
	}
}

// JobGlossaryTermClient is a client for the JobGlossaryTerm schema.
type JobGlossaryTermClient struct {
	config
}

// NewJobGlossaryTermClient returns a client for the JobGlossaryTerm from the given config.
func NewJobGlossaryTermClient(c config) *JobGlossaryTermClient {
	return &JobGlossaryTermClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobglossaryterm.Hooks(f(g(h())))`.
func (c *JobGlossaryTermClient) Use(hooks ...Hook) {
	c.hooks.JobGlossaryTerm = append(c.hooks.JobGlossaryTerm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobglossaryterm.Intercept(f(g(h())))`.
func (c *JobGlossaryTermClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobGlossaryTerm = append(c.inters.JobGlossaryTerm, interceptors...)
}

// Create returns a builder for creating a JobGlossaryTerm entity.
func (c *JobGlossaryTermClient) Create() *JobGlossaryTermCreate {
	mutation := newJobGlossaryTermMutation(c.config, OpCreate)
	return &JobGlossaryTermCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobGlossaryTerm entities.
func (c *JobGlossaryTermClient) CreateBulk(builders ...*JobGlossaryTermCreate) *JobGlossaryTermCreateBulk {
	return &JobGlossaryTermCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobGlossaryTermClient) MapCreateBulk(slice any, setFunc func(*JobGlossaryTermCreate, int)) *JobGlossaryTermCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobGlossaryTermCreateBulk{err: fmt.Errorf("calling to JobGlossaryTermClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobGlossaryTermCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobGlossaryTermCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobGlossaryTerm.
func (c *JobGlossaryTermClient) Update() *JobGlossaryTermUpdate {
	mutation := newJobGlossaryTermMutation(c.config, OpUpdate)
	return &JobGlossaryTermUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobGlossaryTermClient) UpdateOne(_m *JobGlossaryTerm) *JobGlossaryTermUpdateOne {
	mutation := newJobGlossaryTermMutation(c.config, OpUpdateOne, withJobGlossaryTerm(_m))
	return &JobGlossaryTermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobGlossaryTermClient) UpdateOneID(id string) *JobGlossaryTermUpdateOne {
	mutation := newJobGlossaryTermMutation(c.config, OpUpdateOne, withJobGlossaryTermID(id))
	return &JobGlossaryTermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobGlossaryTerm.
func (c *JobGlossaryTermClient) Delete() *JobGlossaryTermDelete {
	mutation := newJobGlossaryTermMutation(c.config, OpDelete)
	return &JobGlossaryTermDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobGlossaryTermClient) DeleteOne(_m *JobGlossaryTerm) *JobGlossaryTermDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobGlossaryTermClient) DeleteOneID(id string) *JobGlossaryTermDeleteOne {
	builder := c.Delete().Where(jobglossaryterm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobGlossaryTermDeleteOne{builder}
}

// Query returns a query builder for JobGlossaryTerm.
func (c *JobGlossaryTermClient) Query() *JobGlossaryTermQuery {
	return &JobGlossaryTermQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobGlossaryTerm},
		inters: c.Interceptors(),
	}
}

// Get returns a JobGlossaryTerm entity by its id.
func (c *JobGlossaryTermClient) Get(ctx context.Context, id string) (*JobGlossaryTerm, error) {
	return c.Query().Where(jobglossaryterm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobGlossaryTermClient) GetX(ctx context.Context, id string) *JobGlossaryTerm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobGlossaryTerm.
func (c *JobGlossaryTermClient) QueryJob(_m *JobGlossaryTerm) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobglossaryterm.Table, jobglossaryterm.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobglossaryterm.JobTable, jobglossaryterm.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobGlossaryTermClient) Hooks() []Hook {
	return c.hooks.JobGlossaryTerm
}

// Interceptors returns the client interceptors.
func (c *JobGlossaryTermClient) Interceptors() []Interceptor {
	return c.inters.JobGlossaryTerm
}

func (c *JobGlossaryTermClient) mutate(ctx context.Context, m *JobGlossaryTermMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobGlossaryTermCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobGlossaryTermUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobGlossaryTermUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobGlossaryTermDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobGlossaryTerm mutation op: %q", m.Op())
	}
}

// LLMRunClient is a client for the LLMRun schema.
type LLMRunClient struct {
	config
}

// NewLLMRunClient returns a client for the LLMRun from the given config.
func NewLLMRunClient(c config) *LLMRunClient {
	return &LLMRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrun.Hooks(f(g(h())))`.
func (c *LLMRunClient) Use(hooks ...Hook) {
	c.hooks.LLMRun = append(c.hooks.LLMRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrun.Intercept(f(g(h())))`.
func (c *LLMRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRun = append(c.inters.LLMRun, interceptors...)
}

// Create returns a builder for creating a LLMRun entity.
func (c *LLMRunClient) Create() *LLMRunCreate {
	mutation := newLLMRunMutation(c.config, OpCreate)
	return &LLMRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRun entities.
func (c *LLMRunClient) CreateBulk(builders ...*LLMRunCreate) *LLMRunCreateBulk {
	return &LLMRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRunClient) MapCreateBulk(slice any, setFunc func(*LLMRunCreate, int)) *LLMRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRunCreateBulk{err: fmt.Errorf("calling to LLMRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRun.
func (c *LLMRunClient) Update() *LLMRunUpdate {
	mutation := newLLMRunMutation(c.config, OpUpdate)
	return &LLMRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRunClient) UpdateOne(_m *LLMRun) *LLMRunUpdateOne {
	mutation := newLLMRunMutation(c.config, OpUpdateOne, withLLMRun(_m))
	return &LLMRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRunClient) UpdateOneID(id string) *LLMRunUpdateOne {
	mutation := newLLMRunMutation(c.config, OpUpdateOne, withLLMRunID(id))
	return &LLMRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRun.
func (c *LLMRunClient) Delete() *LLMRunDelete {
	mutation := newLLMRunMutation(c.config, OpDelete)
	return &LLMRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRunClient) DeleteOne(_m *LLMRun) *LLMRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRunClient) DeleteOneID(id string) *LLMRunDeleteOne {
	builder := c.Delete().Where(llmrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRunDeleteOne{builder}
}

// Query returns a query builder for LLMRun.
func (c *LLMRunClient) Query() *LLMRunQuery {
	return &LLMRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRun},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRun entity by its id.
func (c *LLMRunClient) Get(ctx context.Context, id string) (*LLMRun, error) {
	return c.Query().Where(llmrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRunClient) GetX(ctx context.Context, id string) *LLMRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a LLMRun.
func (c *LLMRunClient) QueryJob(_m *LLMRun) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llmrun.Table, llmrun.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llmrun.JobTable, llmrun.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCue queries the cue edge of a LLMRun.
func (c *LLMRunClient) QueryCue(_m *LLMRun) *JobCueQuery {
	query := (&JobCueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llmrun.Table, llmrun.FieldID, id),
			sqlgraph.To(jobcue.Table, jobcue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llmrun.CueTable, llmrun.CueColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LLMRunClient) Hooks() []Hook {
	return c.hooks.LLMRun
}

// Interceptors returns the client interceptors.
func (c *LLMRunClient) Interceptors() []Interceptor {
	return c.inters.LLMRun
}

func (c *LLMRunClient) mutate(ctx context.Context, m *LLMRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRun mutation op: %q", m.Op())
	}
}

// TMEntryClient is a client for the TMEntry schema.
type TMEntryClient struct {
	config
}

// NewTMEntryClient returns a client for the TMEntry from the given config.
func NewTMEntryClient(c config) *TMEntryClient {
	return &TMEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tmentry.Hooks(f(g(h())))`.
func (c *TMEntryClient) Use(hooks ...Hook) {
	c.hooks.TMEntry = append(c.hooks.TMEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tmentry.Intercept(f(g(h())))`.
func (c *TMEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TMEntry = append(c.inters.TMEntry, interceptors...)
}

// Create returns a builder for creating a TMEntry entity.
func (c *TMEntryClient) Create() *TMEntryCreate {
	mutation := newTMEntryMutation(c.config, OpCreate)
	return &TMEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TMEntry entities.
func (c *TMEntryClient) CreateBulk(builders ...*TMEntryCreate) *TMEntryCreateBulk {
	return &TMEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TMEntryClient) MapCreateBulk(slice any, setFunc func(*TMEntryCreate, int)) *TMEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TMEntryCreateBulk{err: fmt.Errorf("calling to TMEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TMEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TMEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TMEntry.
func (c *TMEntryClient) Update() *TMEntryUpdate {
	mutation := newTMEntryMutation(c.config, OpUpdate)
	return &TMEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TMEntryClient) UpdateOne(_m *TMEntry) *TMEntryUpdateOne {
	mutation := newTMEntryMutation(c.config, OpUpdateOne, withTMEntry(_m))
	return &TMEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TMEntryClient) UpdateOneID(id string) *TMEntryUpdateOne {
	mutation := newTMEntryMutation(c.config, OpUpdateOne, withTMEntryID(id))
	return &TMEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TMEntry.
func (c *TMEntryClient) Delete() *TMEntryDelete {
	mutation := newTMEntryMutation(c.config, OpDelete)
	return &TMEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TMEntryClient) DeleteOne(_m *TMEntry) *TMEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TMEntryClient) DeleteOneID(id string) *TMEntryDeleteOne {
	builder := c.Delete().Where(tmentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TMEntryDeleteOne{builder}
}

// Query returns a query builder for TMEntry.
func (c *TMEntryClient) Query() *TMEntryQuery {
	return &TMEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTMEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TMEntry entity by its id.
func (c *TMEntryClient) Get(ctx context.Context, id string) (*TMEntry, error) {
	return c.Query().Where(tmentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TMEntryClient) GetX(ctx context.Context, id string) *TMEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TMEntryClient) Hooks() []Hook {
	return c.hooks.TMEntry
}

// Interceptors returns the client interceptors.
func (c *TMEntryClient) Interceptors() []Interceptor {
	return c.inters.TMEntry
}

func (c *TMEntryClient) mutate(ctx context.Context, m *TMEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TMEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TMEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TMEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TMEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TMEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Job, JobCue, JobGlossaryTerm, LLMRun, TMEntry []ent.Hook
	}
	inters struct {
		Job, JobCue, JobGlossaryTerm, LLMRun, TMEntry []ent.Interceptor
	}
)
