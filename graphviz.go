package machine

import "github.com/enetx/g"

type edge struct {
	from, to State
}

// ToDOT renders the schema in the Graphviz DOT language. The current state
// is highlighted, states without outgoing transitions are drawn as final,
// and transitions between the same pair of states share one edge.
func (m *Machine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Machine {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.schema.Initial))

	states := m.schema.stateIDs()

	var order g.Slice[edge]
	labels := make(g.Map[edge, g.Slice[g.String]])

	for _, from := range states {
		table := m.schema.States[from]
		for _, event := range eventIDs(table) {
			t := table[event]
			key := edge{from: from, to: t.Target}

			label := g.String(event)
			if len(t.Actions) > 0 {
				names := make(g.Slice[g.String], 0, len(t.Actions))
				for _, name := range t.Actions {
					names = append(names, g.String(name))
				}

				label += " / " + names.Join(", ")
			}

			if !labels.Contains(key) {
				order.Push(key)
			}

			labels[key] = append(labels[key], label)
		}
	}

	for _, state := range states {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == m.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case len(m.schema.States[state]) == 0:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for _, e := range order {
		attrs := g.SliceOf(g.Format("label=\" {} \"", labels[e].Join("\\n")))
		if e.from == e.to {
			attrs.Push("style=dashed")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", e.from, e.to, attrs.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}
