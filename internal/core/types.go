package core

const (
	AppName      = "MemGraph"
	AppUserAgent = "MemGraph-Client/0.1"
	AppVersion   = "0.1.0"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"

	// RoleModel is the history alias the backend expects for assistant turns.
	RoleModel Role = "model"
)

// Action is the client-side intent hint sent with every submission. The
// backend is free to reclassify; the authoritative action comes back in
// the chat response.
type Action string

const (
	ActionAddFact     Action = "add_fact"
	ActionAskQuestion Action = "ask_question"
)

// MessageStatus models the optimistic-update lifecycle of a transcript
// entry: appended as Pending before any network confirmation, then moved
// to Confirmed or Failed. Assistant drafts pass through Streaming while
// the typewriter reveal is running.
type MessageStatus string

const (
	StatusPending   MessageStatus = "pending"
	StatusStreaming MessageStatus = "streaming"
	StatusConfirmed MessageStatus = "confirmed"
	StatusFailed    MessageStatus = "failed"
)

// Details carries the backend's per-action report. NodesCreated and
// EdgesCreated are set for add_fact; CypherQuery and ResultsCount for
// ask_question.
type Details struct {
	NodesCreated int    `json:"nodes_created,omitempty"`
	EdgesCreated int    `json:"edges_created,omitempty"`
	CypherQuery  string `json:"cypher_query,omitempty"`
	ResultsCount int    `json:"results_count,omitempty"`
}

// Message is one transcript entry. IDs are unix-nano timestamps taken at
// append time, unique at UI interaction speed. Finalized messages are
// never edited or removed.
type Message struct {
	ID      int64         `json:"id"`
	Role    Role          `json:"role"`
	Text    string        `json:"text"`
	Status  MessageStatus `json:"status"`
	Action  Action        `json:"action,omitempty"`
	Details *Details      `json:"details,omitempty"`
}

func (m Message) IsStreaming() bool { return m.Status == StatusStreaming }
func (m Message) IsError() bool     { return m.Status == StatusFailed && m.Role == RoleAssistant }

// HistoryEntry is the wire form of a prior turn in a chat request.
type HistoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message    string         `json:"message"`
	ActionType Action         `json:"action_type"`
	History    []HistoryEntry `json:"history"`
	SessionID  string         `json:"session_id"`
}

type ChatResponse struct {
	Success  bool     `json:"success"`
	Action   Action   `json:"action"`
	Response string   `json:"response"`
	Details  *Details `json:"details,omitempty"`
}

// NodeGroup classifies a graph node for display. Supplied entirely by the
// server; the client never computes or mutates it.
type NodeGroup string

const (
	GroupPerson     NodeGroup = "Person"
	GroupProject    NodeGroup = "Project"
	GroupTechnology NodeGroup = "Technology"
	GroupCompany    NodeGroup = "Company"
	GroupLocation   NodeGroup = "Location"
	GroupEntity     NodeGroup = "Entity"
)

// GraphNode is one vertex of the visualized graph. IsGlobal marks a fact
// shared by all sessions; false marks a session-private fact.
type GraphNode struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Group    NodeGroup `json:"group"`
	IsGlobal bool      `json:"is_global"`
}

// GraphLink is a directed, labeled edge. Two nodes may carry multiple
// distinctly named links.
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Name   string `json:"name"`
}

// GraphSnapshot is the full node/link set, replaced wholesale on every
// fetch. Staleness is resolved by replacement, never by merging.
type GraphSnapshot struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// Equal reports node/link set equality under identity. Order is ignored;
// layout coordinates are simulation-derived and never part of a snapshot.
func (s GraphSnapshot) Equal(other GraphSnapshot) bool {
	if len(s.Nodes) != len(other.Nodes) || len(s.Links) != len(other.Links) {
		return false
	}
	nodes := make(map[GraphNode]int, len(s.Nodes))
	for _, n := range s.Nodes {
		nodes[n]++
	}
	for _, n := range other.Nodes {
		nodes[n]--
		if nodes[n] < 0 {
			return false
		}
	}
	links := make(map[GraphLink]int, len(s.Links))
	for _, l := range s.Links {
		links[l]++
	}
	for _, l := range other.Links {
		links[l]--
		if links[l] < 0 {
			return false
		}
	}
	return true
}

// HasNode reports whether id is present in the snapshot. The renderer
// uses this to skip links with dangling endpoints.
func (s GraphSnapshot) HasNode(id string) bool {
	for _, n := range s.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}
