package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/Budget-Table/internal/budget"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// playthrough is one scripted game: a role pick followed by display clicks.
type playthrough struct {
	Name  string   `yaml:"name"`
	Role  int      `yaml:"role"`
	Plays []string `yaml:"plays"`
}

type script struct {
	Playthroughs []playthrough `yaml:"playthroughs"`
}

type roundLine struct {
	play     string
	accepted bool
	ignored  budget.IgnoreReason
	err      error
	feedback budget.Feedback
}

type runStats struct {
	name      string
	role      budget.Role
	roleErr   error
	rounds    []roundLine
	state     budget.State
	summary   *budget.Summary
	accepted  int
	ignored   int
	rejected  int
	goalRound int // accepted round on which the goal was first met, -1 if never
	events    *budget.EventLog
}

func main() {
	var scriptPath string
	var roleID int
	var plays string
	var noColor bool

	flag.StringVar(&scriptPath, "script", "", "yaml file of playthroughs (default: built-in scenarios)")
	flag.IntVar(&roleID, "role", -1, "role id for a single ad-hoc playthrough")
	flag.StringVar(&plays, "plays", "", "comma-separated categories for -role")
	flag.BoolVar(&noColor, "no-color", false, "disable coloured output")
	flag.Parse()

	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	p := &printer{out: termenv.NewOutput(os.Stdout, opts...)}

	var runs []playthrough
	switch {
	case scriptPath != "":
		raw, err := os.ReadFile(scriptPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		runs, err = parseScript(raw)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	case roleID >= 0:
		runs = []playthrough{{Name: "ad-hoc", Role: roleID, Plays: splitPlays(plays)}}
	default:
		runs = builtinScenarios()
	}

	fmt.Fprintf(p.out, "=== Headless Budget Report ===\n")
	fmt.Fprintf(p.out, "playthroughs=%d budget=%s unit=%s max_rounds=%d\n\n",
		len(runs), budget.DefaultBudget.Dollars(), budget.DefaultUnit.Dollars(), budget.DefaultMaxRounds)

	all := make([]runStats, 0, len(runs))
	for _, pt := range runs {
		rs := runPlaythrough(pt)
		all = append(all, rs)
		p.printRun(rs)
	}
	p.printAggregate(all)
}

func parseScript(raw []byte) ([]playthrough, error) {
	var s script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("script yaml: %w", err)
	}
	if len(s.Playthroughs) == 0 {
		return nil, fmt.Errorf("script yaml: no playthroughs")
	}
	for i := range s.Playthroughs {
		if s.Playthroughs[i].Name == "" {
			s.Playthroughs[i].Name = fmt.Sprintf("playthrough-%d", i+1)
		}
	}
	return s.Playthroughs, nil
}

func splitPlays(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// builtinScenarios covers the reference playthroughs: a goal reached
// mid-game, a mixed ten-round game per role, a click after the end, and an
// unknown role.
func builtinScenarios() []playthrough {
	mixed := []string{
		"Research A", "Facilities A", "Scholarships B", "Research B", "Facilities B",
		"Scholarships A", "Research A", "Facilities A", "Scholarships A", "Research B",
	}
	runs := []playthrough{{
		Name:  "dean-five-research-a",
		Role:  0,
		Plays: []string{"Research A", "Research A", "Research A", "Research A", "Research A"},
	}}
	for _, r := range budget.Roles() {
		runs = append(runs, playthrough{Name: "mixed-" + strings.ToLower(strings.ReplaceAll(r.Title, " ", "-")), Role: r.ID, Plays: mixed})
	}
	runs = append(runs,
		playthrough{Name: "eleventh-click", Role: 4, Plays: append(append([]string(nil), mixed...), "Scholarships A")},
		playthrough{Name: "unknown-role", Role: 99, Plays: []string{"Research A"}},
	)
	return runs
}

func runPlaythrough(pt playthrough) runStats {
	events := budget.NewEventLog()
	s := budget.NewSession(budget.WithEventLog(events))
	rs := runStats{name: pt.Name, goalRound: -1, events: events}

	if err := s.SelectRole(pt.Role); err != nil {
		rs.roleErr = err
	}
	rs.role, _ = s.Role()

	for _, play := range pt.Plays {
		line := roundLine{play: play}
		c, err := budget.ParseCategory(play)
		if err != nil {
			// let the session reject and log it
			c = budget.Category(play)
		}
		out, err := s.Allocate(c)
		line.accepted = out.Accepted
		line.ignored = out.Ignored
		line.feedback = out.Feedback
		line.err = err
		if out.Accepted && out.GoalAchieved && rs.goalRound < 0 {
			rs.goalRound = s.RoundsPlayed()
		}
		switch {
		case err != nil:
			rs.rejected++
		case line.accepted:
			rs.accepted++
		default:
			rs.ignored++
		}
		rs.rounds = append(rs.rounds, line)
	}

	rs.state = s.State()
	if sum, ok := s.Summary(); ok {
		rs.summary = &sum
	}
	return rs
}

type printer struct {
	out *termenv.Output
}

func (p *printer) color(s, code string) string {
	if p.out.Profile == termenv.Ascii {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color(code)).String()
}

func (p *printer) printRun(rs runStats) {
	fmt.Fprintf(p.out, "--- %s ---\n", p.color(rs.name, "6"))
	if rs.roleErr != nil {
		fmt.Fprintf(p.out, "role: %s\n\n", p.color(rs.roleErr.Error(), "1"))
		return
	}
	fmt.Fprintf(p.out, "role: %s goal=$%sM in %s\n", rs.role.Title, rs.role.Goal.Millions(), rs.role.PriorityTopic())
	for i, l := range rs.rounds {
		switch {
		case l.err != nil:
			fmt.Fprintf(p.out, "  %2d %-15s %s\n", i+1, l.play, p.color("rejected: "+l.err.Error(), "1"))
		case !l.accepted:
			fmt.Fprintf(p.out, "  %2d %-15s %s\n", i+1, l.play, p.color("ignored: "+string(l.ignored), "3"))
		default:
			fmt.Fprintf(p.out, "  %2d %-15s %s\n", i+1, l.play, l.feedback.Message())
		}
	}
	fmt.Fprintf(p.out, "state=%s accepted=%d ignored=%d rejected=%d goal_round=%d\n",
		rs.state, rs.accepted, rs.ignored, rs.rejected, rs.goalRound)
	if rs.summary != nil {
		head := p.color(rs.summary.Headline(), "1")
		if rs.summary.GoalAchieved {
			head = p.color(rs.summary.Headline(), "2")
		}
		fmt.Fprintln(p.out, head)
		for _, ca := range rs.summary.Allocations {
			fmt.Fprintf(p.out, "  %-15s $%sM\n", ca.Category, ca.Amount.Millions())
		}
	}
	fmt.Fprintln(p.out)
}

func (p *printer) printAggregate(all []runStats) {
	ended, achieved, rejectedRoles := countOutcomes(all)
	fmt.Fprintln(p.out, "=== Aggregate ===")
	fmt.Fprintf(p.out, "playthroughs=%d ended=%d goal_achieved=%d role_rejected=%d\n", len(all), ended, achieved, rejectedRoles)
	fmt.Fprintf(p.out, "success_rate=%s\n", rate(achieved, ended))
}

func countOutcomes(all []runStats) (ended, achieved, rejectedRoles int) {
	for _, rs := range all {
		if rs.roleErr != nil {
			rejectedRoles++
		}
		if rs.summary == nil {
			continue
		}
		ended++
		if rs.summary.GoalAchieved {
			achieved++
		}
	}
	return ended, achieved, rejectedRoles
}

func rate(n, of int) string {
	if of <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(n)/float64(of)*100)
}
