/*
Package call implements the appointment video-call signaling relay.

This file defines the Registry: the mapping from a room id to the ordered set of
participants currently in that room. A Registry is owned by exactly one Relay and is only
touched from that relay's event loop, so it carries no lock.
*/
package call

import "slices"

// Registry maps room ids to their members in join order.
type Registry struct {
	rooms map[string][]*Participant
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string][]*Participant)}
}

// Add puts p into roomID, creating the room if needed, and returns the members that were
// already present. Adding a participant twice is a no-op that still returns the others.
func (r *Registry) Add(roomID string, p *Participant) []*Participant {
	members := r.rooms[roomID]
	others := without(members, p)

	if len(others) == len(members) {
		r.rooms[roomID] = append(members, p)
	}

	return others
}

// Remove takes p out of roomID and returns the remaining members. An emptied room is
// dropped from the registry. removed is false when p was not a member.
func (r *Registry) Remove(roomID string, p *Participant) (remaining []*Participant, removed bool) {
	members, ok := r.rooms[roomID]
	if !ok {
		return nil, false
	}

	remaining = without(members, p)
	if len(remaining) == len(members) {
		return remaining, false
	}

	if len(remaining) == 0 {
		delete(r.rooms, roomID)
	} else {
		r.rooms[roomID] = remaining
	}

	return slices.Clone(remaining), true
}

// Members returns a copy of roomID's members in join order.
func (r *Registry) Members(roomID string) []*Participant {
	return slices.Clone(r.rooms[roomID])
}

// RoomCount returns the number of non-empty rooms.
func (r *Registry) RoomCount() int {
	return len(r.rooms)
}

// MemberCount returns the number of participants across all rooms.
func (r *Registry) MemberCount() int {
	total := 0
	for _, members := range r.rooms {
		total += len(members)
	}
	return total
}

// Clear drops every room.
func (r *Registry) Clear() {
	clear(r.rooms)
}

// without returns a new slice holding members other than p.
func without(members []*Participant, p *Participant) []*Participant {
	out := make([]*Participant, 0, len(members))
	for _, m := range members {
		if m != p {
			out = append(out, m)
		}
	}
	return out
}
