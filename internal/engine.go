package internal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Engine owns all live workspace and timer state for one process. Every
// mutation goes through its methods; reads used by display ticking
// (CurrentElapsed, TotalToday) are pure and never mutate.
//
// Invariant: at most one workspace is running at any instant, and
// ActiveWorkspace names exactly that workspace (0 when none). The invariant
// holds even when a storage call fails mid-action: the action is abandoned
// and in-memory state is left as it was.
type Engine struct {
	mu    sync.RWMutex
	store EntryStore
	clock Clock

	count   int
	names   map[int]string
	entries map[int][]Entry // most-recent-first per workspace
	timers  map[int]TimerState
	active  int // 0 = no active workspace
}

// NewEngine loads persisted state from the store and reconciles it: missing
// workspaces in [1, count] are created with default names, and a persisted
// running timer is resurrected so a timer started by a previous process
// keeps accumulating.
func NewEngine(store EntryStore, clock Clock) (*Engine, error) {
	e := &Engine{
		store:   store,
		clock:   clock,
		names:   make(map[int]string),
		entries: make(map[int][]Entry),
		timers:  make(map[int]TimerState),
	}

	count, err := store.WorkspaceCount()
	if err != nil {
		return nil, err
	}
	e.count = count

	workspaces, err := store.ListWorkspaces()
	if err != nil {
		return nil, err
	}
	for _, w := range workspaces {
		e.names[w.ID] = w.Name
	}
	for id := 1; id <= e.count; id++ {
		if _, ok := e.names[id]; ok {
			continue
		}
		name := DefaultWorkspaceName(id)
		if err := store.UpsertWorkspace(id, name); err != nil {
			return nil, err
		}
		e.names[id] = name
	}

	all, err := store.ListEntries(0)
	if err != nil {
		return nil, err
	}
	for _, entry := range all {
		e.entries[entry.WorkspaceID] = append(e.entries[entry.WorkspaceID], entry)
	}

	timer, err := store.ActiveTimer()
	if err != nil {
		return nil, err
	}
	if timer != nil && timer.WorkspaceID >= 1 {
		e.active = timer.WorkspaceID
		e.timers[timer.WorkspaceID] = TimerState{
			StartTime:     timer.StartTime,
			AccumulatedMS: timer.AccumulatedMS,
		}
	}

	return e, nil
}

// WorkspaceCount returns the configured number of visible workspaces.
func (e *Engine) WorkspaceCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.count
}

// ActiveWorkspace returns the id of the running workspace, or 0.
func (e *Engine) ActiveWorkspace() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// Workspaces returns the visible workspaces in id order.
func (e *Engine) Workspaces() []Workspace {
	e.mu.RLock()
	defer e.mu.RUnlock()
	workspaces := make([]Workspace, 0, e.count)
	for id := 1; id <= e.count; id++ {
		name, ok := e.names[id]
		if !ok {
			name = DefaultWorkspaceName(id)
		}
		workspaces = append(workspaces, Workspace{ID: id, Name: name})
	}
	return workspaces
}

// WorkspaceName returns the display name for id, defaulting for unknown ids.
func (e *Engine) WorkspaceName(id int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if name, ok := e.names[id]; ok {
		return name
	}
	return DefaultWorkspaceName(id)
}

func (e *Engine) checkWorkspaceID(id int) error {
	if id < 1 || id > e.count {
		return &ValidationError{Field: "workspace", Msg: fmt.Sprintf("id %d out of range [1, %d]", id, e.count)}
	}
	return nil
}

// Start begins timing the given workspace. If another workspace is running
// it is flushed first; its entry is durably created before the new timer
// becomes visible. Starting the already-active workspace is a no-op.
func (e *Engine) Start(workspaceID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWorkspaceID(workspaceID); err != nil {
		return err
	}
	if e.active == workspaceID && e.timers[workspaceID].Running() {
		return nil
	}

	now := e.clock.Now()
	next := &ActiveTimer{WorkspaceID: workspaceID, StartTime: now}

	if e.active != 0 && e.timers[e.active].Running() {
		if _, err := e.flushLocked(e.active, "", now, next); err != nil {
			return err
		}
	} else if err := e.store.SetActiveTimer(next); err != nil {
		return err
	}

	banked := e.timers[workspaceID].AccumulatedMS
	e.timers[workspaceID] = TimerState{StartTime: now, AccumulatedMS: banked}
	e.active = workspaceID
	LogDebug("started workspace %d at %s", workspaceID, now.Format(time.RFC3339))
	return nil
}

// Stop flushes the workspace's running timer into a persisted entry and
// returns it. Stopping a workspace that is not running is a no-op and
// returns nil.
func (e *Engine) Stop(workspaceID int, description string) (*Entry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.timers[workspaceID].Running() {
		return nil, nil
	}
	return e.flushLocked(workspaceID, description, e.clock.Now(), nil)
}

// StopActive stops whichever workspace is running. It is a no-op when no
// timer is active.
func (e *Engine) StopActive(description string) (*Entry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == 0 || !e.timers[e.active].Running() {
		return nil, nil
	}
	return e.flushLocked(e.active, description, e.clock.Now(), nil)
}

// flushLocked converts workspaceID's running timer into an entry, persists
// it together with the replacement timer state in one storage action, and
// only then mutates in-memory state. Callers hold e.mu and have verified
// the timer is running.
func (e *Engine) flushLocked(workspaceID int, description string, now time.Time, next *ActiveTimer) (*Entry, error) {
	state := e.timers[workspaceID]
	entry := Entry{
		WorkspaceID: workspaceID,
		StartTime:   state.StartTime,
		EndTime:     now,
		DurationMS:  state.ElapsedMS(now),
		Description: NormalizeDescription(description),
	}

	id, err := e.store.FlushTimer(entry, next)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	e.entries[workspaceID] = append([]Entry{entry}, e.entries[workspaceID]...)
	e.timers[workspaceID] = TimerState{}
	if e.active == workspaceID {
		e.active = 0
	}
	LogDebug("flushed workspace %d: %s (%s)", workspaceID, entry.Description, FormatClockDuration(entry.DurationMS))
	return &entry, nil
}

// CurrentElapsed returns the workspace's effective elapsed time: banked time
// plus the live portion when running. It never mutates state and is safe to
// poll at display frequency.
func (e *Engine) CurrentElapsed(workspaceID int) time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return time.Duration(e.timers[workspaceID].ElapsedMS(e.clock.Now())) * time.Millisecond
}

// SetWorkspaceCount applies a new workspace count. The active timer, if any,
// is flushed first so no interval is lost on resize. Workspaces with ids
// above the new count are hidden, never deleted; raising the count again
// restores them with their entries intact.
func (e *Engine) SetWorkspaceCount(newCount int) error {
	if newCount < 1 {
		return &ValidationError{Field: "workspace count", Msg: "must be at least 1"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != 0 && e.timers[e.active].Running() {
		if _, err := e.flushLocked(e.active, "", e.clock.Now(), nil); err != nil {
			return err
		}
	}

	for id := 1; id <= newCount; id++ {
		if _, ok := e.names[id]; ok {
			continue
		}
		name := DefaultWorkspaceName(id)
		if err := e.store.UpsertWorkspace(id, name); err != nil {
			return err
		}
		e.names[id] = name
	}

	if err := e.store.SetWorkspaceCount(newCount); err != nil {
		return err
	}
	e.count = newCount
	return nil
}

// RenameWorkspace sets the workspace's display name. The name is trimmed;
// an empty result falls back to the default name. Uniqueness is not
// enforced.
func (e *Engine) RenameWorkspace(id int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkWorkspaceID(id); err != nil {
		return err
	}
	name = normalizeWorkspaceName(id, name)
	if err := e.store.UpsertWorkspace(id, name); err != nil {
		return err
	}
	e.names[id] = name
	return nil
}

// Entries returns a copy of the workspace's entry list, most recent first.
func (e *Engine) Entries(workspaceID int) []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entries := make([]Entry, len(e.entries[workspaceID]))
	copy(entries, e.entries[workspaceID])
	return entries
}

// AllEntries returns every visible workspace's entries merged most recent
// first.
func (e *Engine) AllEntries() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var all []Entry
	for id := 1; id <= e.count; id++ {
		all = append(all, e.entries[id]...)
	}
	sortEntriesByStartDesc(all)
	return all
}

// TotalToday returns today's total worked time across all workspaces,
// including the live elapsed time of the active timer even when that
// interval started before today.
func (e *Engine) TotalToday() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ms := TotalTodayMS(e.entries, e.timers, e.active, e.clock.Now())
	return time.Duration(ms) * time.Millisecond
}

// EditDescription changes an entry's description, the only mutable entry
// field. The raw value is trimmed and defaulted like a stop description.
func (e *Engine) EditDescription(entryID int64, description string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	description = NormalizeDescription(description)
	if err := e.store.UpdateEntryDescription(entryID, description); err != nil {
		return err
	}
	for workspaceID, list := range e.entries {
		for i := range list {
			if list[i].ID == entryID {
				e.entries[workspaceID][i].Description = description
				return nil
			}
		}
	}
	return nil
}

// DeleteEntry removes one entry. The delete is single-shot and
// unconditional; confirmation belongs to the presentation layer.
func (e *Engine) DeleteEntry(entryID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.DeleteEntry(entryID); err != nil {
		return err
	}
	for workspaceID, list := range e.entries {
		for i := range list {
			if list[i].ID == entryID {
				e.entries[workspaceID] = append(list[:i:i], list[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// ClearEntries deletes the whole entry history across all workspaces.
func (e *Engine) ClearEntries() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.DeleteAllEntries(); err != nil {
		return err
	}
	e.entries = make(map[int][]Entry)
	return nil
}

func normalizeWorkspaceName(id int, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultWorkspaceName(id)
	}
	return name
}
