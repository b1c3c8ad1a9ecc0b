package queueHealth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/monobilisim/check-rabbitmq-queues/common"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Stats collects the outcome of one probe run. Lengths maps every checked
// queue to either its message count (as a decimal string) or, when the
// query failed, the human-readable cause. Critical and Warning hold the
// names of the queues that landed in each state, in check order.
type Stats struct {
	Lengths  map[string]string
	Critical []string
	Warning  []string
}

// NewStats creates an empty Stats with initialized fields.
func NewStats() *Stats {
	return &Stats{
		Lengths:  make(map[string]string),
		Critical: []string{},
		Warning:  []string{},
	}
}

// State reports the classification a single queue ended up in.
func (s *Stats) State(name string) string {
	for _, q := range s.Critical {
		if q == name {
			return "CRITICAL"
		}
	}
	for _, q := range s.Warning {
		if q == name {
			return "WARNING"
		}
	}
	return "OK"
}

// FormatStatus renders the queues occupying one classification as
// "name1(value1) name2(value2)", where value is the recorded length or
// failure text from the lengths map.
func FormatStatus(names []string, lengths map[string]string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s(%s)", name, lengths[name]))
	}
	return strings.Join(parts, " ")
}

// RenderDetail builds the per-queue report shown on stderr with --detail.
// It never touches stdout.
func RenderDetail(cfg *common.Config, stats *Stats) string {
	var sb strings.Builder

	sb.WriteString(common.SectionTitle("Queue Lengths"))
	sb.WriteString("\n")

	for _, name := range sortedQueueNames(cfg.Queues) {
		t := cfg.Queues[name]
		limits := fmt.Sprintf("(warning > %d, critical > %d)", t.Warning, t.Critical)
		sb.WriteString(common.ThresholdListItem(name, stats.Lengths[name], limits, stats.State(name)))
		sb.WriteString("\n")
	}

	if len(stats.Critical) > 0 || len(stats.Warning) > 0 {
		sb.WriteString("\n")
		sb.WriteString(common.SectionTitle("Exceeded Queues"))
		sb.WriteString("\n")
		sb.WriteString(exceededTable(cfg, stats))
	}

	title := fmt.Sprintf("%s v%s - %s:%d%s", common.ScriptName, Version, cfg.Host, cfg.Port, cfg.Vhost)
	return common.DisplayBox(title, sb.String())
}

// exceededTable renders the queues outside the OK state.
func exceededTable(cfg *common.Config, stats *Stats) string {
	var tableData [][]string
	for _, name := range append(append([]string{}, stats.Critical...), stats.Warning...) {
		t := cfg.Queues[name]
		tableData = append(tableData, []string{
			stats.State(name),
			name,
			stats.Lengths[name],
			strconv.Itoa(t.Warning),
			strconv.Itoa(t.Critical),
		})
	}

	output := &strings.Builder{}
	table := tablewriter.NewTable(output, tablewriter.WithRendition(tw.Rendition{
		Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
	}))
	table.Header("State", "Queue", "Length", "Warning", "Critical")
	if err := table.Bulk(tableData); err != nil {
		return ""
	}
	if err := table.Render(); err != nil {
		return ""
	}

	return output.String()
}
