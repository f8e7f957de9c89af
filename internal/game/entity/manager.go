package entity

import "github.com/google/uuid"

// Manager stores the actors of a level in insertion order.
type Manager struct {
	actors []*Actor
	index  map[uuid.UUID]int
	player *Actor
}

// NewManager creates an empty actor manager.
func NewManager() *Manager {
	return &Manager{
		index: make(map[uuid.UUID]int),
	}
}

// Add adds an actor. Adding an actor already present replaces it in place.
func (m *Manager) Add(a *Actor) {
	if i, ok := m.index[a.ID]; ok {
		m.actors[i] = a
		return
	}
	m.index[a.ID] = len(m.actors)
	m.actors = append(m.actors, a)
}

// Remove removes an actor, keeping the order of the others.
func (m *Manager) Remove(id uuid.UUID) {
	i, ok := m.index[id]
	if !ok {
		return
	}
	m.actors = append(m.actors[:i], m.actors[i+1:]...)
	delete(m.index, id)
	for j := i; j < len(m.actors); j++ {
		m.index[m.actors[j].ID] = j
	}
	if m.player != nil && m.player.ID == id {
		m.player = nil
	}
}

// Get returns an actor by ID.
func (m *Manager) Get(id uuid.UUID) *Actor {
	if i, ok := m.index[id]; ok {
		return m.actors[i]
	}
	return nil
}

// SetPlayer sets the controlled player and adds it.
func (m *Manager) SetPlayer(a *Actor) {
	m.player = a
	m.Add(a)
}

// Player returns the controlled player.
func (m *Manager) Player() *Actor {
	return m.player
}

// All returns all actors in insertion order. The slice is shared.
func (m *Manager) All() []*Actor {
	return m.actors
}

// GetByTag returns all actors with the given tag.
func (m *Manager) GetByTag(tag Tag) []*Actor {
	result := make([]*Actor, 0)
	for _, a := range m.actors {
		if a.Tag == tag {
			result = append(result, a)
		}
	}
	return result
}

// Count returns the total number of actors.
func (m *Manager) Count() int {
	return len(m.actors)
}

// CountByTag returns the number of actors with the given tag.
func (m *Manager) CountByTag(tag Tag) int {
	count := 0
	for _, a := range m.actors {
		if a.Tag == tag {
			count++
		}
	}
	return count
}

// Clear removes every actor, the player included.
func (m *Manager) Clear() {
	m.actors = nil
	m.index = make(map[uuid.UUID]int)
	m.player = nil
}
