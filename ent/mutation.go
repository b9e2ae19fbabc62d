// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/splunk-genie/genie/ent/conversation"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/ent/message"
	"github.com/splunk-genie/genie/ent/predicate"
	"github.com/splunk-genie/genie/ent/queryresult"
	"github.com/splunk-genie/genie/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation = "Conversation"
	TypeJob          = "Job"
	TypeMessage      = "Message"
	TypeQueryResult  = "QueryResult"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	title           *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	messages        map[int]struct{}
	removedmessages map[int]struct{}
	clearedmessages bool
	jobs            map[string]struct{}
	removedjobs     map[string]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Conversation, error)
	predicates      []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id int) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ConversationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ConversationMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[conversation.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ConversationMutation) TitleCleared() bool {
	_, ok := m.clearedFields[conversation.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, conversation.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *ConversationMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *ConversationMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *ConversationMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *ConversationMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *ConversationMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ConversationMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ConversationMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.title != nil {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTitle:
		return m.Title()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldTitle:
		return m.OldTitle(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldTitle) {
		fields = append(fields, conversation.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldTitle:
		m.ResetTitle()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.jobs != nil {
		edges = append(edges, conversation.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.removedjobs != nil {
		edges = append(edges, conversation.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedjobs {
		edges = append(edges, conversation.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	_type               *job.Type
	params              *map[string]interface{}
	status              *job.Status
	progress            *int
	addprogress         *int
	result              *map[string]interface{}
	error               *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *int
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Job, error)
	predicates          []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *JobMutation) SetType(j job.Type) {
	m._type = &j
}

// GetType returns the value of the "type" field in the mutation.
func (m *JobMutation) GetType() (r job.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldType(ctx context.Context) (v job.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *JobMutation) ResetType() {
	m._type = nil
}

// SetParams sets the "params" field.
func (m *JobMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *JobMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *JobMutation) ClearParams() {
	m.params = nil
	m.clearedFields[job.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *JobMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[job.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *JobMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, job.FieldParams)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *JobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *JobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *JobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *JobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *JobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetConversationID sets the "conversation_id" field.
func (m *JobMutation) SetConversationID(i int) {
	m.conversation = &i
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *JobMutation) ConversationID() (r int, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldConversationID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *JobMutation) ClearConversationID() {
	m.conversation = nil
	m.clearedFields[job.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *JobMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[job.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *JobMutation) ResetConversationID() {
	m.conversation = nil
	delete(m.clearedFields, job.FieldConversationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *JobMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[job.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *JobMutation) ConversationCleared() bool {
	return m.ConversationIDCleared() || m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *JobMutation) ConversationIDs() (ids []int) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *JobMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m._type != nil {
		fields = append(fields, job.FieldType)
	}
	if m.params != nil {
		fields = append(fields, job.FieldParams)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, job.FieldProgress)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.conversation != nil {
		fields = append(fields, job.FieldConversationID)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldType:
		return m.GetType()
	case job.FieldParams:
		return m.Params()
	case job.FieldStatus:
		return m.Status()
	case job.FieldProgress:
		return m.Progress()
	case job.FieldResult:
		return m.Result()
	case job.FieldError:
		return m.Error()
	case job.FieldConversationID:
		return m.ConversationID()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldType:
		return m.OldType(ctx)
	case job.FieldParams:
		return m.OldParams(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldProgress:
		return m.OldProgress(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldConversationID:
		return m.OldConversationID(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldType:
		v, ok := value.(job.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case job.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldConversationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, job.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldParams) {
		fields = append(fields, job.FieldParams)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldConversationID) {
		fields = append(fields, job.FieldConversationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldParams:
		m.ClearParams()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldConversationID:
		m.ClearConversationID()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldType:
		m.ResetType()
		return nil
	case job.FieldParams:
		m.ResetParams()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldProgress:
		m.ResetProgress()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldConversationID:
		m.ResetConversationID()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, job.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, job.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	role                *message.Role
	content             *string
	blocks              *[]models.Block
	appendblocks        []models.Block
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *int
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(i int) {
	m.conversation = &i
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r int, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetBlocks sets the "blocks" field.
func (m *MessageMutation) SetBlocks(value []models.Block) {
	m.blocks = &value
	m.appendblocks = nil
}

// Blocks returns the value of the "blocks" field in the mutation.
func (m *MessageMutation) Blocks() (r []models.Block, exists bool) {
	v := m.blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocks returns the old "blocks" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBlocks(ctx context.Context) (v []models.Block, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocks: %w", err)
	}
	return oldValue.Blocks, nil
}

// AppendBlocks adds value to the "blocks" field.
func (m *MessageMutation) AppendBlocks(value []models.Block) {
	m.appendblocks = append(m.appendblocks, value...)
}

// AppendedBlocks returns the list of values that were appended to the "blocks" field in this mutation.
func (m *MessageMutation) AppendedBlocks() ([]models.Block, bool) {
	if len(m.appendblocks) == 0 {
		return nil, false
	}
	return m.appendblocks, true
}

// ClearBlocks clears the value of the "blocks" field.
func (m *MessageMutation) ClearBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	m.clearedFields[message.FieldBlocks] = struct{}{}
}

// BlocksCleared returns if the "blocks" field was cleared in this mutation.
func (m *MessageMutation) BlocksCleared() bool {
	_, ok := m.clearedFields[message.FieldBlocks]
	return ok
}

// ResetBlocks resets all changes to the "blocks" field.
func (m *MessageMutation) ResetBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	delete(m.clearedFields, message.FieldBlocks)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []int) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.blocks != nil {
		fields = append(fields, message.FieldBlocks)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, message.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldBlocks:
		return m.Blocks()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	case message.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldBlocks:
		return m.OldBlocks(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case message.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldBlocks:
		v, ok := value.([]models.Block)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocks(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case message.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldBlocks) {
		fields = append(fields, message.FieldBlocks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldBlocks:
		m.ClearBlocks()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldBlocks:
		m.ResetBlocks()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case message.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// QueryResultMutation represents an operation that mutates the QueryResult nodes in the graph.
type QueryResultMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	user_id                 *string
	query                   *string
	query_hash              *string
	earliest                *string
	latest                  *string
	columns                 *[]string
	appendcolumns           []string
	rows                    *[][]interface{}
	appendrows              [][]interface{}
	row_count               *int
	addrow_count            *int
	execution_time          *float64
	addexecution_time       *float64
	visualization_type      *string
	visualization_config    *map[string]interface{}
	single_value            *float64
	addsingle_value         *float64
	gauge_value             *float64
	addgauge_value          *float64
	chart_data              *[]map[string]interface{}
	appendchart_data        []map[string]interface{}
	is_time_series          *bool
	allow_chart_type_switch *bool
	search_job_id           *string
	error                   *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*QueryResult, error)
	predicates              []predicate.QueryResult
}

var _ ent.Mutation = (*QueryResultMutation)(nil)

// queryresultOption allows management of the mutation configuration using functional options.
type queryresultOption func(*QueryResultMutation)

// newQueryResultMutation creates new mutation for the QueryResult entity.
func newQueryResultMutation(c config, op Op, opts ...queryresultOption) *QueryResultMutation {
	m := &QueryResultMutation{
		config:        c,
		op:            op,
		typ:           TypeQueryResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueryResultID sets the ID field of the mutation.
func withQueryResultID(id int) queryresultOption {
	return func(m *QueryResultMutation) {
		var (
			err   error
			once  sync.Once
			value *QueryResult
		)
		m.oldValue = func(ctx context.Context) (*QueryResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueryResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueryResult sets the old QueryResult of the mutation.
func withQueryResult(node *QueryResult) queryresultOption {
	return func(m *QueryResultMutation) {
		m.oldValue = func(context.Context) (*QueryResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueryResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueryResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueryResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueryResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueryResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QueryResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QueryResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QueryResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuery sets the "query" field.
func (m *QueryResultMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *QueryResultMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *QueryResultMutation) ResetQuery() {
	m.query = nil
}

// SetQueryHash sets the "query_hash" field.
func (m *QueryResultMutation) SetQueryHash(s string) {
	m.query_hash = &s
}

// QueryHash returns the value of the "query_hash" field in the mutation.
func (m *QueryResultMutation) QueryHash() (r string, exists bool) {
	v := m.query_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryHash returns the old "query_hash" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldQueryHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryHash: %w", err)
	}
	return oldValue.QueryHash, nil
}

// ResetQueryHash resets all changes to the "query_hash" field.
func (m *QueryResultMutation) ResetQueryHash() {
	m.query_hash = nil
}

// SetEarliest sets the "earliest" field.
func (m *QueryResultMutation) SetEarliest(s string) {
	m.earliest = &s
}

// Earliest returns the value of the "earliest" field in the mutation.
func (m *QueryResultMutation) Earliest() (r string, exists bool) {
	v := m.earliest
	if v == nil {
		return
	}
	return *v, true
}

// OldEarliest returns the old "earliest" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldEarliest(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarliest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarliest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarliest: %w", err)
	}
	return oldValue.Earliest, nil
}

// ClearEarliest clears the value of the "earliest" field.
func (m *QueryResultMutation) ClearEarliest() {
	m.earliest = nil
	m.clearedFields[queryresult.FieldEarliest] = struct{}{}
}

// EarliestCleared returns if the "earliest" field was cleared in this mutation.
func (m *QueryResultMutation) EarliestCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldEarliest]
	return ok
}

// ResetEarliest resets all changes to the "earliest" field.
func (m *QueryResultMutation) ResetEarliest() {
	m.earliest = nil
	delete(m.clearedFields, queryresult.FieldEarliest)
}

// SetLatest sets the "latest" field.
func (m *QueryResultMutation) SetLatest(s string) {
	m.latest = &s
}

// Latest returns the value of the "latest" field in the mutation.
func (m *QueryResultMutation) Latest() (r string, exists bool) {
	v := m.latest
	if v == nil {
		return
	}
	return *v, true
}

// OldLatest returns the old "latest" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldLatest(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatest: %w", err)
	}
	return oldValue.Latest, nil
}

// ClearLatest clears the value of the "latest" field.
func (m *QueryResultMutation) ClearLatest() {
	m.latest = nil
	m.clearedFields[queryresult.FieldLatest] = struct{}{}
}

// LatestCleared returns if the "latest" field was cleared in this mutation.
func (m *QueryResultMutation) LatestCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldLatest]
	return ok
}

// ResetLatest resets all changes to the "latest" field.
func (m *QueryResultMutation) ResetLatest() {
	m.latest = nil
	delete(m.clearedFields, queryresult.FieldLatest)
}

// SetColumns sets the "columns" field.
func (m *QueryResultMutation) SetColumns(s []string) {
	m.columns = &s
	m.appendcolumns = nil
}

// Columns returns the value of the "columns" field in the mutation.
func (m *QueryResultMutation) Columns() (r []string, exists bool) {
	v := m.columns
	if v == nil {
		return
	}
	return *v, true
}

// OldColumns returns the old "columns" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldColumns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumns: %w", err)
	}
	return oldValue.Columns, nil
}

// AppendColumns adds s to the "columns" field.
func (m *QueryResultMutation) AppendColumns(s []string) {
	m.appendcolumns = append(m.appendcolumns, s...)
}

// AppendedColumns returns the list of values that were appended to the "columns" field in this mutation.
func (m *QueryResultMutation) AppendedColumns() ([]string, bool) {
	if len(m.appendcolumns) == 0 {
		return nil, false
	}
	return m.appendcolumns, true
}

// ClearColumns clears the value of the "columns" field.
func (m *QueryResultMutation) ClearColumns() {
	m.columns = nil
	m.appendcolumns = nil
	m.clearedFields[queryresult.FieldColumns] = struct{}{}
}

// ColumnsCleared returns if the "columns" field was cleared in this mutation.
func (m *QueryResultMutation) ColumnsCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldColumns]
	return ok
}

// ResetColumns resets all changes to the "columns" field.
func (m *QueryResultMutation) ResetColumns() {
	m.columns = nil
	m.appendcolumns = nil
	delete(m.clearedFields, queryresult.FieldColumns)
}

// SetRows sets the "rows" field.
func (m *QueryResultMutation) SetRows(i [][]interface{}) {
	m.rows = &i
	m.appendrows = nil
}

// Rows returns the value of the "rows" field in the mutation.
func (m *QueryResultMutation) Rows() (r [][]interface{}, exists bool) {
	v := m.rows
	if v == nil {
		return
	}
	return *v, true
}

// OldRows returns the old "rows" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldRows(ctx context.Context) (v [][]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRows: %w", err)
	}
	return oldValue.Rows, nil
}

// AppendRows adds i to the "rows" field.
func (m *QueryResultMutation) AppendRows(i [][]interface{}) {
	m.appendrows = append(m.appendrows, i...)
}

// AppendedRows returns the list of values that were appended to the "rows" field in this mutation.
func (m *QueryResultMutation) AppendedRows() ([][]interface{}, bool) {
	if len(m.appendrows) == 0 {
		return nil, false
	}
	return m.appendrows, true
}

// ClearRows clears the value of the "rows" field.
func (m *QueryResultMutation) ClearRows() {
	m.rows = nil
	m.appendrows = nil
	m.clearedFields[queryresult.FieldRows] = struct{}{}
}

// RowsCleared returns if the "rows" field was cleared in this mutation.
func (m *QueryResultMutation) RowsCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldRows]
	return ok
}

// ResetRows resets all changes to the "rows" field.
func (m *QueryResultMutation) ResetRows() {
	m.rows = nil
	m.appendrows = nil
	delete(m.clearedFields, queryresult.FieldRows)
}

// SetRowCount sets the "row_count" field.
func (m *QueryResultMutation) SetRowCount(i int) {
	m.row_count = &i
	m.addrow_count = nil
}

// RowCount returns the value of the "row_count" field in the mutation.
func (m *QueryResultMutation) RowCount() (r int, exists bool) {
	v := m.row_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowCount returns the old "row_count" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldRowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowCount: %w", err)
	}
	return oldValue.RowCount, nil
}

// AddRowCount adds i to the "row_count" field.
func (m *QueryResultMutation) AddRowCount(i int) {
	if m.addrow_count != nil {
		*m.addrow_count += i
	} else {
		m.addrow_count = &i
	}
}

// AddedRowCount returns the value that was added to the "row_count" field in this mutation.
func (m *QueryResultMutation) AddedRowCount() (r int, exists bool) {
	v := m.addrow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowCount resets all changes to the "row_count" field.
func (m *QueryResultMutation) ResetRowCount() {
	m.row_count = nil
	m.addrow_count = nil
}

// SetExecutionTime sets the "execution_time" field.
func (m *QueryResultMutation) SetExecutionTime(f float64) {
	m.execution_time = &f
	m.addexecution_time = nil
}

// ExecutionTime returns the value of the "execution_time" field in the mutation.
func (m *QueryResultMutation) ExecutionTime() (r float64, exists bool) {
	v := m.execution_time
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTime returns the old "execution_time" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldExecutionTime(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTime: %w", err)
	}
	return oldValue.ExecutionTime, nil
}

// AddExecutionTime adds f to the "execution_time" field.
func (m *QueryResultMutation) AddExecutionTime(f float64) {
	if m.addexecution_time != nil {
		*m.addexecution_time += f
	} else {
		m.addexecution_time = &f
	}
}

// AddedExecutionTime returns the value that was added to the "execution_time" field in this mutation.
func (m *QueryResultMutation) AddedExecutionTime() (r float64, exists bool) {
	v := m.addexecution_time
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTime clears the value of the "execution_time" field.
func (m *QueryResultMutation) ClearExecutionTime() {
	m.execution_time = nil
	m.addexecution_time = nil
	m.clearedFields[queryresult.FieldExecutionTime] = struct{}{}
}

// ExecutionTimeCleared returns if the "execution_time" field was cleared in this mutation.
func (m *QueryResultMutation) ExecutionTimeCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldExecutionTime]
	return ok
}

// ResetExecutionTime resets all changes to the "execution_time" field.
func (m *QueryResultMutation) ResetExecutionTime() {
	m.execution_time = nil
	m.addexecution_time = nil
	delete(m.clearedFields, queryresult.FieldExecutionTime)
}

// SetVisualizationType sets the "visualization_type" field.
func (m *QueryResultMutation) SetVisualizationType(s string) {
	m.visualization_type = &s
}

// VisualizationType returns the value of the "visualization_type" field in the mutation.
func (m *QueryResultMutation) VisualizationType() (r string, exists bool) {
	v := m.visualization_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualizationType returns the old "visualization_type" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldVisualizationType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualizationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualizationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualizationType: %w", err)
	}
	return oldValue.VisualizationType, nil
}

// ClearVisualizationType clears the value of the "visualization_type" field.
func (m *QueryResultMutation) ClearVisualizationType() {
	m.visualization_type = nil
	m.clearedFields[queryresult.FieldVisualizationType] = struct{}{}
}

// VisualizationTypeCleared returns if the "visualization_type" field was cleared in this mutation.
func (m *QueryResultMutation) VisualizationTypeCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldVisualizationType]
	return ok
}

// ResetVisualizationType resets all changes to the "visualization_type" field.
func (m *QueryResultMutation) ResetVisualizationType() {
	m.visualization_type = nil
	delete(m.clearedFields, queryresult.FieldVisualizationType)
}

// SetVisualizationConfig sets the "visualization_config" field.
func (m *QueryResultMutation) SetVisualizationConfig(value map[string]interface{}) {
	m.visualization_config = &value
}

// VisualizationConfig returns the value of the "visualization_config" field in the mutation.
func (m *QueryResultMutation) VisualizationConfig() (r map[string]interface{}, exists bool) {
	v := m.visualization_config
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualizationConfig returns the old "visualization_config" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldVisualizationConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualizationConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualizationConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualizationConfig: %w", err)
	}
	return oldValue.VisualizationConfig, nil
}

// ClearVisualizationConfig clears the value of the "visualization_config" field.
func (m *QueryResultMutation) ClearVisualizationConfig() {
	m.visualization_config = nil
	m.clearedFields[queryresult.FieldVisualizationConfig] = struct{}{}
}

// VisualizationConfigCleared returns if the "visualization_config" field was cleared in this mutation.
func (m *QueryResultMutation) VisualizationConfigCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldVisualizationConfig]
	return ok
}

// ResetVisualizationConfig resets all changes to the "visualization_config" field.
func (m *QueryResultMutation) ResetVisualizationConfig() {
	m.visualization_config = nil
	delete(m.clearedFields, queryresult.FieldVisualizationConfig)
}

// SetSingleValue sets the "single_value" field.
func (m *QueryResultMutation) SetSingleValue(f float64) {
	m.single_value = &f
	m.addsingle_value = nil
}

// SingleValue returns the value of the "single_value" field in the mutation.
func (m *QueryResultMutation) SingleValue() (r float64, exists bool) {
	v := m.single_value
	if v == nil {
		return
	}
	return *v, true
}

// OldSingleValue returns the old "single_value" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldSingleValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSingleValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSingleValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSingleValue: %w", err)
	}
	return oldValue.SingleValue, nil
}

// AddSingleValue adds f to the "single_value" field.
func (m *QueryResultMutation) AddSingleValue(f float64) {
	if m.addsingle_value != nil {
		*m.addsingle_value += f
	} else {
		m.addsingle_value = &f
	}
}

// AddedSingleValue returns the value that was added to the "single_value" field in this mutation.
func (m *QueryResultMutation) AddedSingleValue() (r float64, exists bool) {
	v := m.addsingle_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearSingleValue clears the value of the "single_value" field.
func (m *QueryResultMutation) ClearSingleValue() {
	m.single_value = nil
	m.addsingle_value = nil
	m.clearedFields[queryresult.FieldSingleValue] = struct{}{}
}

// SingleValueCleared returns if the "single_value" field was cleared in this mutation.
func (m *QueryResultMutation) SingleValueCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldSingleValue]
	return ok
}

// ResetSingleValue resets all changes to the "single_value" field.
func (m *QueryResultMutation) ResetSingleValue() {
	m.single_value = nil
	m.addsingle_value = nil
	delete(m.clearedFields, queryresult.FieldSingleValue)
}

// SetGaugeValue sets the "gauge_value" field.
func (m *QueryResultMutation) SetGaugeValue(f float64) {
	m.gauge_value = &f
	m.addgauge_value = nil
}

// GaugeValue returns the value of the "gauge_value" field in the mutation.
func (m *QueryResultMutation) GaugeValue() (r float64, exists bool) {
	v := m.gauge_value
	if v == nil {
		return
	}
	return *v, true
}

// OldGaugeValue returns the old "gauge_value" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldGaugeValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGaugeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGaugeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGaugeValue: %w", err)
	}
	return oldValue.GaugeValue, nil
}

// AddGaugeValue adds f to the "gauge_value" field.
func (m *QueryResultMutation) AddGaugeValue(f float64) {
	if m.addgauge_value != nil {
		*m.addgauge_value += f
	} else {
		m.addgauge_value = &f
	}
}

// AddedGaugeValue returns the value that was added to the "gauge_value" field in this mutation.
func (m *QueryResultMutation) AddedGaugeValue() (r float64, exists bool) {
	v := m.addgauge_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearGaugeValue clears the value of the "gauge_value" field.
func (m *QueryResultMutation) ClearGaugeValue() {
	m.gauge_value = nil
	m.addgauge_value = nil
	m.clearedFields[queryresult.FieldGaugeValue] = struct{}{}
}

// GaugeValueCleared returns if the "gauge_value" field was cleared in this mutation.
func (m *QueryResultMutation) GaugeValueCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldGaugeValue]
	return ok
}

// ResetGaugeValue resets all changes to the "gauge_value" field.
func (m *QueryResultMutation) ResetGaugeValue() {
	m.gauge_value = nil
	m.addgauge_value = nil
	delete(m.clearedFields, queryresult.FieldGaugeValue)
}

// SetChartData sets the "chart_data" field.
func (m *QueryResultMutation) SetChartData(value []map[string]interface{}) {
	m.chart_data = &value
	m.appendchart_data = nil
}

// ChartData returns the value of the "chart_data" field in the mutation.
func (m *QueryResultMutation) ChartData() (r []map[string]interface{}, exists bool) {
	v := m.chart_data
	if v == nil {
		return
	}
	return *v, true
}

// OldChartData returns the old "chart_data" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldChartData(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartData: %w", err)
	}
	return oldValue.ChartData, nil
}

// AppendChartData adds value to the "chart_data" field.
func (m *QueryResultMutation) AppendChartData(value []map[string]interface{}) {
	m.appendchart_data = append(m.appendchart_data, value...)
}

// AppendedChartData returns the list of values that were appended to the "chart_data" field in this mutation.
func (m *QueryResultMutation) AppendedChartData() ([]map[string]interface{}, bool) {
	if len(m.appendchart_data) == 0 {
		return nil, false
	}
	return m.appendchart_data, true
}

// ClearChartData clears the value of the "chart_data" field.
func (m *QueryResultMutation) ClearChartData() {
	m.chart_data = nil
	m.appendchart_data = nil
	m.clearedFields[queryresult.FieldChartData] = struct{}{}
}

// ChartDataCleared returns if the "chart_data" field was cleared in this mutation.
func (m *QueryResultMutation) ChartDataCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldChartData]
	return ok
}

// ResetChartData resets all changes to the "chart_data" field.
func (m *QueryResultMutation) ResetChartData() {
	m.chart_data = nil
	m.appendchart_data = nil
	delete(m.clearedFields, queryresult.FieldChartData)
}

// SetIsTimeSeries sets the "is_time_series" field.
func (m *QueryResultMutation) SetIsTimeSeries(b bool) {
	m.is_time_series = &b
}

// IsTimeSeries returns the value of the "is_time_series" field in the mutation.
func (m *QueryResultMutation) IsTimeSeries() (r bool, exists bool) {
	v := m.is_time_series
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTimeSeries returns the old "is_time_series" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldIsTimeSeries(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTimeSeries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTimeSeries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTimeSeries: %w", err)
	}
	return oldValue.IsTimeSeries, nil
}

// ResetIsTimeSeries resets all changes to the "is_time_series" field.
func (m *QueryResultMutation) ResetIsTimeSeries() {
	m.is_time_series = nil
}

// SetAllowChartTypeSwitch sets the "allow_chart_type_switch" field.
func (m *QueryResultMutation) SetAllowChartTypeSwitch(b bool) {
	m.allow_chart_type_switch = &b
}

// AllowChartTypeSwitch returns the value of the "allow_chart_type_switch" field in the mutation.
func (m *QueryResultMutation) AllowChartTypeSwitch() (r bool, exists bool) {
	v := m.allow_chart_type_switch
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowChartTypeSwitch returns the old "allow_chart_type_switch" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldAllowChartTypeSwitch(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowChartTypeSwitch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowChartTypeSwitch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowChartTypeSwitch: %w", err)
	}
	return oldValue.AllowChartTypeSwitch, nil
}

// ResetAllowChartTypeSwitch resets all changes to the "allow_chart_type_switch" field.
func (m *QueryResultMutation) ResetAllowChartTypeSwitch() {
	m.allow_chart_type_switch = nil
}

// SetSearchJobID sets the "search_job_id" field.
func (m *QueryResultMutation) SetSearchJobID(s string) {
	m.search_job_id = &s
}

// SearchJobID returns the value of the "search_job_id" field in the mutation.
func (m *QueryResultMutation) SearchJobID() (r string, exists bool) {
	v := m.search_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchJobID returns the old "search_job_id" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldSearchJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchJobID: %w", err)
	}
	return oldValue.SearchJobID, nil
}

// ClearSearchJobID clears the value of the "search_job_id" field.
func (m *QueryResultMutation) ClearSearchJobID() {
	m.search_job_id = nil
	m.clearedFields[queryresult.FieldSearchJobID] = struct{}{}
}

// SearchJobIDCleared returns if the "search_job_id" field was cleared in this mutation.
func (m *QueryResultMutation) SearchJobIDCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldSearchJobID]
	return ok
}

// ResetSearchJobID resets all changes to the "search_job_id" field.
func (m *QueryResultMutation) ResetSearchJobID() {
	m.search_job_id = nil
	delete(m.clearedFields, queryresult.FieldSearchJobID)
}

// SetError sets the "error" field.
func (m *QueryResultMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *QueryResultMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *QueryResultMutation) ClearError() {
	m.error = nil
	m.clearedFields[queryresult.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *QueryResultMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[queryresult.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *QueryResultMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, queryresult.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueryResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueryResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueryResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueryResultMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueryResultMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueryResult entity.
// If the QueryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryResultMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueryResultMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueryResultMutation builder.
func (m *QueryResultMutation) Where(ps ...predicate.QueryResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueryResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueryResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueryResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueryResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueryResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueryResult).
func (m *QueryResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueryResultMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.user_id != nil {
		fields = append(fields, queryresult.FieldUserID)
	}
	if m.query != nil {
		fields = append(fields, queryresult.FieldQuery)
	}
	if m.query_hash != nil {
		fields = append(fields, queryresult.FieldQueryHash)
	}
	if m.earliest != nil {
		fields = append(fields, queryresult.FieldEarliest)
	}
	if m.latest != nil {
		fields = append(fields, queryresult.FieldLatest)
	}
	if m.columns != nil {
		fields = append(fields, queryresult.FieldColumns)
	}
	if m.rows != nil {
		fields = append(fields, queryresult.FieldRows)
	}
	if m.row_count != nil {
		fields = append(fields, queryresult.FieldRowCount)
	}
	if m.execution_time != nil {
		fields = append(fields, queryresult.FieldExecutionTime)
	}
	if m.visualization_type != nil {
		fields = append(fields, queryresult.FieldVisualizationType)
	}
	if m.visualization_config != nil {
		fields = append(fields, queryresult.FieldVisualizationConfig)
	}
	if m.single_value != nil {
		fields = append(fields, queryresult.FieldSingleValue)
	}
	if m.gauge_value != nil {
		fields = append(fields, queryresult.FieldGaugeValue)
	}
	if m.chart_data != nil {
		fields = append(fields, queryresult.FieldChartData)
	}
	if m.is_time_series != nil {
		fields = append(fields, queryresult.FieldIsTimeSeries)
	}
	if m.allow_chart_type_switch != nil {
		fields = append(fields, queryresult.FieldAllowChartTypeSwitch)
	}
	if m.search_job_id != nil {
		fields = append(fields, queryresult.FieldSearchJobID)
	}
	if m.error != nil {
		fields = append(fields, queryresult.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, queryresult.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, queryresult.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueryResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queryresult.FieldUserID:
		return m.UserID()
	case queryresult.FieldQuery:
		return m.Query()
	case queryresult.FieldQueryHash:
		return m.QueryHash()
	case queryresult.FieldEarliest:
		return m.Earliest()
	case queryresult.FieldLatest:
		return m.Latest()
	case queryresult.FieldColumns:
		return m.Columns()
	case queryresult.FieldRows:
		return m.Rows()
	case queryresult.FieldRowCount:
		return m.RowCount()
	case queryresult.FieldExecutionTime:
		return m.ExecutionTime()
	case queryresult.FieldVisualizationType:
		return m.VisualizationType()
	case queryresult.FieldVisualizationConfig:
		return m.VisualizationConfig()
	case queryresult.FieldSingleValue:
		return m.SingleValue()
	case queryresult.FieldGaugeValue:
		return m.GaugeValue()
	case queryresult.FieldChartData:
		return m.ChartData()
	case queryresult.FieldIsTimeSeries:
		return m.IsTimeSeries()
	case queryresult.FieldAllowChartTypeSwitch:
		return m.AllowChartTypeSwitch()
	case queryresult.FieldSearchJobID:
		return m.SearchJobID()
	case queryresult.FieldError:
		return m.Error()
	case queryresult.FieldCreatedAt:
		return m.CreatedAt()
	case queryresult.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueryResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queryresult.FieldUserID:
		return m.OldUserID(ctx)
	case queryresult.FieldQuery:
		return m.OldQuery(ctx)
	case queryresult.FieldQueryHash:
		return m.OldQueryHash(ctx)
	case queryresult.FieldEarliest:
		return m.OldEarliest(ctx)
	case queryresult.FieldLatest:
		return m.OldLatest(ctx)
	case queryresult.FieldColumns:
		return m.OldColumns(ctx)
	case queryresult.FieldRows:
		return m.OldRows(ctx)
	case queryresult.FieldRowCount:
		return m.OldRowCount(ctx)
	case queryresult.FieldExecutionTime:
		return m.OldExecutionTime(ctx)
	case queryresult.FieldVisualizationType:
		return m.OldVisualizationType(ctx)
	case queryresult.FieldVisualizationConfig:
		return m.OldVisualizationConfig(ctx)
	case queryresult.FieldSingleValue:
		return m.OldSingleValue(ctx)
	case queryresult.FieldGaugeValue:
		return m.OldGaugeValue(ctx)
	case queryresult.FieldChartData:
		return m.OldChartData(ctx)
	case queryresult.FieldIsTimeSeries:
		return m.OldIsTimeSeries(ctx)
	case queryresult.FieldAllowChartTypeSwitch:
		return m.OldAllowChartTypeSwitch(ctx)
	case queryresult.FieldSearchJobID:
		return m.OldSearchJobID(ctx)
	case queryresult.FieldError:
		return m.OldError(ctx)
	case queryresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queryresult.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueryResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queryresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case queryresult.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case queryresult.FieldQueryHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryHash(v)
		return nil
	case queryresult.FieldEarliest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarliest(v)
		return nil
	case queryresult.FieldLatest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatest(v)
		return nil
	case queryresult.FieldColumns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumns(v)
		return nil
	case queryresult.FieldRows:
		v, ok := value.([][]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRows(v)
		return nil
	case queryresult.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowCount(v)
		return nil
	case queryresult.FieldExecutionTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTime(v)
		return nil
	case queryresult.FieldVisualizationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualizationType(v)
		return nil
	case queryresult.FieldVisualizationConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualizationConfig(v)
		return nil
	case queryresult.FieldSingleValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSingleValue(v)
		return nil
	case queryresult.FieldGaugeValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGaugeValue(v)
		return nil
	case queryresult.FieldChartData:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartData(v)
		return nil
	case queryresult.FieldIsTimeSeries:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTimeSeries(v)
		return nil
	case queryresult.FieldAllowChartTypeSwitch:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowChartTypeSwitch(v)
		return nil
	case queryresult.FieldSearchJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchJobID(v)
		return nil
	case queryresult.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case queryresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queryresult.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueryResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueryResultMutation) AddedFields() []string {
	var fields []string
	if m.addrow_count != nil {
		fields = append(fields, queryresult.FieldRowCount)
	}
	if m.addexecution_time != nil {
		fields = append(fields, queryresult.FieldExecutionTime)
	}
	if m.addsingle_value != nil {
		fields = append(fields, queryresult.FieldSingleValue)
	}
	if m.addgauge_value != nil {
		fields = append(fields, queryresult.FieldGaugeValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueryResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queryresult.FieldRowCount:
		return m.AddedRowCount()
	case queryresult.FieldExecutionTime:
		return m.AddedExecutionTime()
	case queryresult.FieldSingleValue:
		return m.AddedSingleValue()
	case queryresult.FieldGaugeValue:
		return m.AddedGaugeValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queryresult.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowCount(v)
		return nil
	case queryresult.FieldExecutionTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTime(v)
		return nil
	case queryresult.FieldSingleValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSingleValue(v)
		return nil
	case queryresult.FieldGaugeValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGaugeValue(v)
		return nil
	}
	return fmt.Errorf("unknown QueryResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueryResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queryresult.FieldEarliest) {
		fields = append(fields, queryresult.FieldEarliest)
	}
	if m.FieldCleared(queryresult.FieldLatest) {
		fields = append(fields, queryresult.FieldLatest)
	}
	if m.FieldCleared(queryresult.FieldColumns) {
		fields = append(fields, queryresult.FieldColumns)
	}
	if m.FieldCleared(queryresult.FieldRows) {
		fields = append(fields, queryresult.FieldRows)
	}
	if m.FieldCleared(queryresult.FieldExecutionTime) {
		fields = append(fields, queryresult.FieldExecutionTime)
	}
	if m.FieldCleared(queryresult.FieldVisualizationType) {
		fields = append(fields, queryresult.FieldVisualizationType)
	}
	if m.FieldCleared(queryresult.FieldVisualizationConfig) {
		fields = append(fields, queryresult.FieldVisualizationConfig)
	}
	if m.FieldCleared(queryresult.FieldSingleValue) {
		fields = append(fields, queryresult.FieldSingleValue)
	}
	if m.FieldCleared(queryresult.FieldGaugeValue) {
		fields = append(fields, queryresult.FieldGaugeValue)
	}
	if m.FieldCleared(queryresult.FieldChartData) {
		fields = append(fields, queryresult.FieldChartData)
	}
	if m.FieldCleared(queryresult.FieldSearchJobID) {
		fields = append(fields, queryresult.FieldSearchJobID)
	}
	if m.FieldCleared(queryresult.FieldError) {
		fields = append(fields, queryresult.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueryResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueryResultMutation) ClearField(name string) error {
	switch name {
	case queryresult.FieldEarliest:
		m.ClearEarliest()
		return nil
	case queryresult.FieldLatest:
		m.ClearLatest()
		return nil
	case queryresult.FieldColumns:
		m.ClearColumns()
		return nil
	case queryresult.FieldRows:
		m.ClearRows()
		return nil
	case queryresult.FieldExecutionTime:
		m.ClearExecutionTime()
		return nil
	case queryresult.FieldVisualizationType:
		m.ClearVisualizationType()
		return nil
	case queryresult.FieldVisualizationConfig:
		m.ClearVisualizationConfig()
		return nil
	case queryresult.FieldSingleValue:
		m.ClearSingleValue()
		return nil
	case queryresult.FieldGaugeValue:
		m.ClearGaugeValue()
		return nil
	case queryresult.FieldChartData:
		m.ClearChartData()
		return nil
	case queryresult.FieldSearchJobID:
		m.ClearSearchJobID()
		return nil
	case queryresult.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown QueryResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueryResultMutation) ResetField(name string) error {
	switch name {
	case queryresult.FieldUserID:
		m.ResetUserID()
		return nil
	case queryresult.FieldQuery:
		m.ResetQuery()
		return nil
	case queryresult.FieldQueryHash:
		m.ResetQueryHash()
		return nil
	case queryresult.FieldEarliest:
		m.ResetEarliest()
		return nil
	case queryresult.FieldLatest:
		m.ResetLatest()
		return nil
	case queryresult.FieldColumns:
		m.ResetColumns()
		return nil
	case queryresult.FieldRows:
		m.ResetRows()
		return nil
	case queryresult.FieldRowCount:
		m.ResetRowCount()
		return nil
	case queryresult.FieldExecutionTime:
		m.ResetExecutionTime()
		return nil
	case queryresult.FieldVisualizationType:
		m.ResetVisualizationType()
		return nil
	case queryresult.FieldVisualizationConfig:
		m.ResetVisualizationConfig()
		return nil
	case queryresult.FieldSingleValue:
		m.ResetSingleValue()
		return nil
	case queryresult.FieldGaugeValue:
		m.ResetGaugeValue()
		return nil
	case queryresult.FieldChartData:
		m.ResetChartData()
		return nil
	case queryresult.FieldIsTimeSeries:
		m.ResetIsTimeSeries()
		return nil
	case queryresult.FieldAllowChartTypeSwitch:
		m.ResetAllowChartTypeSwitch()
		return nil
	case queryresult.FieldSearchJobID:
		m.ResetSearchJobID()
		return nil
	case queryresult.FieldError:
		m.ResetError()
		return nil
	case queryresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queryresult.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueryResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueryResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueryResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueryResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueryResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueryResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueryResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueryResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueryResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueryResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueryResult edge %s", name)
}
