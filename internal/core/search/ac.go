package search

// Aho-Corasick automaton over raw bytes with a fixed 256-way transition
// table per node so the scan loop does no map lookups

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int
	fail   int
	output []int // pattern indexes ending at this node
}

func newNode() acNode {
	var n acNode
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

// Matcher finds the leftmost occurrence of any of a fixed set of patterns
// a built Matcher is read only and safe for concurrent use
type Matcher struct {
	nodes    []acNode
	lens     []int
	maxLen   int
	patterns int
}

// NewMatcher builds a Matcher for patterns, empty patterns never match
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{
		nodes:    []acNode{newNode()},
		lens:     make([]int, len(patterns)),
		patterns: len(patterns),
	}
	for id, p := range patterns {
		m.lens[id] = len(p)
		m.add(p, id)
	}
	m.build()
	return m
}

// Len returns the number of patterns the Matcher was built with
func (m *Matcher) Len() int { return m.patterns }

func (m *Matcher) add(pat string, id int) {
	if len(pat) == 0 {
		return
	}
	if len(pat) > m.maxLen {
		m.maxLen = len(pat)
	}
	state := 0
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := m.nodes[state].trans[b]
		if nxt == -1 {
			nxt = len(m.nodes)
			m.nodes[state].trans[b] = nxt
			m.nodes = append(m.nodes, newNode())
		}
		state = nxt
	}
	m.nodes[state].output = append(m.nodes[state].output, id)
}

// build finalizes failure links breadth first
func (m *Matcher) build() {
	q := make([]int, 0, 64)
	for b := range 256 {
		if s := m.nodes[0].trans[b]; s != -1 {
			m.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := m.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := m.nodes[r].fail
			for f != 0 && m.nodes[f].trans[b] == -1 {
				f = m.nodes[f].fail
			}
			if nxt := m.nodes[f].trans[b]; nxt != -1 {
				m.nodes[s].fail = nxt
			} else {
				m.nodes[s].fail = 0
			}
			m.nodes[s].output = append(m.nodes[s].output, m.nodes[m.nodes[s].fail].output...)
		}
	}
}

// each calls cb(end, id) for every match, stopping when cb returns false
func (m *Matcher) each(text string, cb func(end, id int) bool) {
	state := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && m.nodes[state].trans[b] == -1 {
			state = m.nodes[state].fail
		}
		if nxt := m.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range m.nodes[state].output {
			if !cb(i+1, id) {
				return
			}
		}
	}
}

// First returns the leftmost match start and the matching pattern index
// equal starts resolve to the lowest pattern index
// it returns (len(text), -1) when nothing matches
func (m *Matcher) First(text string) (pos, idx int) {
	pos, idx = len(text), -1
	if m == nil || m.maxLen == 0 {
		return pos, idx
	}
	m.each(text, func(end, id int) bool {
		// nothing ending here or later can start before pos
		if end-m.maxLen > pos {
			return false
		}
		start := end - m.lens[id]
		if start < pos || (start == pos && id < idx) {
			pos, idx = start, id
		}
		return true
	})
	return pos, idx
}

// FindFirstOf is a one shot NewMatcher(patterns).First(text)
func FindFirstOf(text string, patterns []string) (pos, idx int) {
	return NewMatcher(patterns).First(text)
}
