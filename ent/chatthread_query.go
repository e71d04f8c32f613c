// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ChatThreadQuery is the builder for querying ChatThread entities.
type ChatThreadQuery struct {
	config
	ctx            *QueryContext
	order          []chatthread.OrderOption
	inters         []Interceptor
	predicates     []predicate.ChatThread
	withNamespace  *NamespaceQuery
	withAssignment *AssignmentQuery
	withMessages   *ChatMessageQuery
	withChatJobs   *ChatJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChatThreadQuery builder.
func (_q *ChatThreadQuery) Where(ps ...predicate.ChatThread) *ChatThreadQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChatThreadQuery) Limit(limit int) *ChatThreadQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChatThreadQuery) Offset(offset int) *ChatThreadQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChatThreadQuery) Unique(unique bool) *ChatThreadQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChatThreadQuery) Order(o ...chatthread.OrderOption) *ChatThreadQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNamespace chains the current query on the "namespace" edge.
func (_q *ChatThreadQuery) QueryNamespace() *NamespaceQuery {
	query := (&NamespaceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatthread.Table, chatthread.FieldID, selector),
			sqlgraph.To(namespace.Table, namespace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatthread.NamespaceTable, chatthread.NamespaceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignment chains the current query on the "assignment" edge.
func (_q *ChatThreadQuery) QueryAssignment() *AssignmentQuery {
	query := (&AssignmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatthread.Table, chatthread.FieldID, selector),
			sqlgraph.To(assignment.Table, assignment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatthread.AssignmentTable, chatthread.AssignmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *ChatThreadQuery) QueryMessages() *ChatMessageQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatthread.Table, chatthread.FieldID, selector),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatthread.MessagesTable, chatthread.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChatJobs chains the current query on the "chat_jobs" edge.
func (_q *ChatThreadQuery) QueryChatJobs() *ChatJobQuery {
	query := (&ChatJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatthread.Table, chatthread.FieldID, selector),
			sqlgraph.To(chatjob.Table, chatjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatthread.ChatJobsTable, chatthread.ChatJobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ChatThread entity from the query.
// Returns a *NotFoundError when no ChatThread was found.
func (_q *ChatThreadQuery) First(ctx context.Context) (*ChatThread, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{chatthread.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChatThreadQuery) FirstX(ctx context.Context) *ChatThread {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ChatThread ID from the query.
// Returns a *NotFoundError when no ChatThread ID was found.
func (_q *ChatThreadQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{chatthread.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChatThreadQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ChatThread entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ChatThread entity is found.
// Returns a *NotFoundError when no ChatThread entities are found.
func (_q *ChatThreadQuery) Only(ctx context.Context) (*ChatThread, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{chatthread.Label}
	default:
		return nil, &NotSingularError{chatthread.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChatThreadQuery) OnlyX(ctx context.Context) *ChatThread {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ChatThread ID in the query.
// Returns a *NotSingularError when more than one ChatThread ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChatThreadQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{chatthread.Label}
	default:
		err = &NotSingularError{chatthread.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChatThreadQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ChatThreads.
func (_q *ChatThreadQuery) All(ctx context.Context) ([]*ChatThread, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ChatThread, *ChatThreadQuery]()
	return withInterceptors[[]*ChatThread](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChatThreadQuery) AllX(ctx context.Context) []*ChatThread {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ChatThread IDs.
func (_q *ChatThreadQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(chatthread.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChatThreadQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChatThreadQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChatThreadQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChatThreadQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChatThreadQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ChatThreadQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChatThreadQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChatThreadQuery) Clone() *ChatThreadQuery {
	if _q == nil {
		return nil
	}
	return &ChatThreadQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]chatthread.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ChatThread{}, _q.predicates...),
		withNamespace:  _q.withNamespace.Clone(),
		withAssignment: _q.withAssignment.Clone(),
		withMessages:   _q.withMessages.Clone(),
		withChatJobs:   _q.withChatJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNamespace tells the query-builder to eager-load the nodes that are connected to
// the "namespace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatThreadQuery) WithNamespace(opts ...func(*NamespaceQuery)) *ChatThreadQuery {
	query := (&NamespaceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNamespace = query
	return _q
}

// WithAssignment tells the query-builder to eager-load the nodes that are connected to
// the "assignment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatThreadQuery) WithAssignment(opts ...func(*AssignmentQuery)) *ChatThreadQuery {
	query := (&AssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignment = query
	return _q
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatThreadQuery) WithMessages(opts ...func(*ChatMessageQuery)) *ChatThreadQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithChatJobs tells the query-builder to eager-load the nodes that are connected to
// the "chat_jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatThreadQuery) WithChatJobs(opts ...func(*ChatJobQuery)) *ChatThreadQuery {
	query := (&ChatJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChatJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		NamespaceID string `json:"namespace_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ChatThread.Query().
//		GroupBy(chatthread.FieldNamespaceID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ChatThreadQuery) GroupBy(field string, fields ...string) *ChatThreadGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChatThreadGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = chatthread.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		NamespaceID string `json:"namespace_id,omitempty"`
//	}
//
//	client.ChatThread.Query().
//		Select(chatthread.FieldNamespaceID).
//		Scan(ctx, &v)
func (_q *ChatThreadQuery) Select(fields ...string) *ChatThreadSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChatThreadSelect{ChatThreadQuery: _q}
	sbuild.label = chatthread.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChatThreadSelect configured with the given aggregations.
func (_q *ChatThreadQuery) Aggregate(fns ...AggregateFunc) *ChatThreadSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChatThreadQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !chatthread.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ChatThreadQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ChatThread, error) {
	var (
		nodes       = []*ChatThread{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withNamespace != nil,
			_q.withAssignment != nil,
			_q.withMessages != nil,
			_q.withChatJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ChatThread).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ChatThread{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withNamespace; query != nil {
		if err := _q.loadNamespace(ctx, query, nodes, nil,
			func(n *ChatThread, e *Namespace) { n.Edges.Namespace = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignment; query != nil {
		if err := _q.loadAssignment(ctx, query, nodes, nil,
			func(n *ChatThread, e *Assignment) { n.Edges.Assignment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *ChatThread) { n.Edges.Messages = []*ChatMessage{} },
			func(n *ChatThread, e *ChatMessage) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChatJobs; query != nil {
		if err := _q.loadChatJobs(ctx, query, nodes,
			func(n *ChatThread) { n.Edges.ChatJobs = []*ChatJob{} },
			func(n *ChatThread, e *ChatJob) { n.Edges.ChatJobs = append(n.Edges.ChatJobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChatThreadQuery) loadNamespace(ctx context.Context, query *NamespaceQuery, nodes []*ChatThread, init func(*ChatThread), assign func(*ChatThread, *Namespace)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ChatThread)
	for i := range nodes {
		fk := nodes[i].NamespaceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(namespace.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "namespace_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ChatThreadQuery) loadAssignment(ctx context.Context, query *AssignmentQuery, nodes []*ChatThread, init func(*ChatThread), assign func(*ChatThread, *Assignment)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ChatThread)
	for i := range nodes {
		if nodes[i].AssignmentID == nil {
			continue
		}
		fk := *nodes[i].AssignmentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(assignment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "assignment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ChatThreadQuery) loadMessages(ctx context.Context, query *ChatMessageQuery, nodes []*ChatThread, init func(*ChatThread), assign func(*ChatThread, *ChatMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ChatThread)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatmessage.FieldThreadID)
	}
	query.Where(predicate.ChatMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatthread.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ThreadID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "thread_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChatThreadQuery) loadChatJobs(ctx context.Context, query *ChatJobQuery, nodes []*ChatThread, init func(*ChatThread), assign func(*ChatThread, *ChatJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ChatThread)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatjob.FieldThreadID)
	}
	query.Where(predicate.ChatJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatthread.ChatJobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ThreadID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "thread_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ChatThreadQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ChatThreadQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(chatthread.Table, chatthread.Columns, sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatthread.FieldID)
		for i := range fields {
			if fields[i] != chatthread.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withNamespace != nil {
			_spec.Node.AddColumnOnce(chatthread.FieldNamespaceID)
		}
		if _q.withAssignment != nil {
			_spec.Node.AddColumnOnce(chatthread.FieldAssignmentID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ChatThreadQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(chatthread.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = chatthread.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ChatThreadGroupBy is the group-by builder for ChatThread entities.
type ChatThreadGroupBy struct {
	selector
	build *ChatThreadQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChatThreadGroupBy) Aggregate(fns ...AggregateFunc) *ChatThreadGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChatThreadGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChatThreadQuery, *ChatThreadGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChatThreadGroupBy) sqlScan(ctx context.Context, root *ChatThreadQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ChatThreadSelect is the builder for selecting fields of ChatThread entities.
type ChatThreadSelect struct {
	*ChatThreadQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChatThreadSelect) Aggregate(fns ...AggregateFunc) *ChatThreadSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChatThreadSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChatThreadQuery, *ChatThreadSelect](ctx, _s.ChatThreadQuery, _s, _s.inters, v)
}

func (_s *ChatThreadSelect) sqlScan(ctx context.Context, root *ChatThreadQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
