package manifest

import "fmt"

// Workspace is the root workspace manifest (Cargo.toml with a [workspace]
// table). Only workspace.members is interpreted.
type Workspace struct {
	doc map[string]any
}

// ParseWorkspace parses workspace manifest content.
func ParseWorkspace(data []byte) (*Workspace, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	wsTable, err := table(doc, "workspace")
	if err != nil {
		return nil, err
	}
	if wsTable == nil {
		return nil, fmt.Errorf("%w: missing [workspace] table", ErrParse)
	}
	if v, ok := wsTable["members"]; ok {
		if _, err := stringList(v, "workspace.members"); err != nil {
			return nil, err
		}
	}
	return &Workspace{doc: doc}, nil
}

// NewWorkspace builds a workspace manifest from a member list.
func NewWorkspace(members ...string) *Workspace {
	ws := &Workspace{doc: map[string]any{"workspace": map[string]any{}}}
	ws.setMembers(members)
	return ws
}

// Members returns a copy of workspace.members in document order.
func (w *Workspace) Members() []string {
	wsTable, _ := w.doc["workspace"].(map[string]any)
	v, ok := wsTable["members"]
	if !ok {
		return []string{}
	}
	members, _ := stringList(v, "workspace.members")
	return members
}

// HasMember reports whether path is listed in workspace.members.
func (w *Workspace) HasMember(path string) bool {
	for _, m := range w.Members() {
		if m == path {
			return true
		}
	}
	return false
}

func (w *Workspace) setMembers(members []string) {
	ensureTable(w.doc, "workspace")["members"] = append([]string{}, members...)
}

// Encode renders the manifest as TOML.
func (w *Workspace) Encode() ([]byte, error) {
	return encode(w.doc)
}
