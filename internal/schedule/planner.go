package schedule

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jchen89/taskdesk/internal/model"
)

// Planner walks an operator through reviewing the existing schedule and
// optionally laying out a new run of equal-duration slots. It is a scripted
// sequence of prompts over an injected reader/writer, so tests drive it with
// canned input.
type Planner struct {
	reg *Registry
	in  *bufio.Scanner
	out io.Writer
}

// NewPlanner builds a planner reading prompts' answers from in and writing
// to out.
func NewPlanner(reg *Registry, in io.Reader, out io.Writer) *Planner {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Planner{reg: reg, in: sc, out: out}
}

// Run executes the full workflow: review future slots (optional replan),
// triage in-progress then expired slots, then optionally generate new ones.
func (p *Planner) Run() error {
	p.rule("Schedule planning")

	if !p.reviewFuture() {
		return nil
	}
	if !p.triageInProgress() {
		return nil
	}
	if !p.triageExpired() {
		return nil
	}

	p.rule("New plan")
	yes, ok := p.confirm("Create a new plan? (y/N): ", false)
	if !ok {
		return nil
	}
	if !yes {
		p.printf("Done.\n")
		return nil
	}
	return p.generate()
}

// reviewFuture shows pending future slots and offers a guarded replan that
// soft-deletes them all. Returns false when input ran out.
func (p *Planner) reviewFuture() bool {
	future := p.reg.Future()
	if len(future) == 0 {
		return true
	}

	p.printf("Existing future slots:\n")
	for _, s := range future {
		p.printSlot(s, "")
	}

	yes, ok := p.confirm("Replan from scratch? (y/N): ", false)
	if !ok {
		return false
	}
	if !yes {
		return true
	}

	// Replanning wipes every pending slot, so it takes three confirmations.
	confirmations := []string{
		"This soft-deletes all future slots. Continue? (y/N): ",
		"Are you sure? (y/N): ",
		"Last chance — really replan? (y/N): ",
	}
	for _, msg := range confirmations {
		yes, ok := p.confirm(msg, false)
		if !ok {
			return false
		}
		if !yes {
			p.printf("Replan cancelled.\n")
			return true
		}
	}

	count, err := p.reg.SoftDeleteFuture()
	if err != nil {
		p.printf("[ERROR] %v\n", err)
		return true
	}
	p.printf("[OK] soft-deleted %d future slot(s)\n", count)
	return true
}

func (p *Planner) triageInProgress() bool {
	items := p.reg.InProgress()
	if len(items) == 0 {
		return true
	}
	p.rule("In progress")
	for _, s := range items {
		p.printSlot(s, "")
		p.printf("\n  [1] still in progress  [2] completed  [3] extend\n")
		p.printf("  [4] shelve  [5] edit description  [6] edit value note  [0] skip\n")
		if !p.triageChoice(s, false) {
			return false
		}
	}
	return true
}

func (p *Planner) triageExpired() bool {
	items := p.reg.Expired()
	if len(items) == 0 {
		return true
	}
	p.rule("Expired")
	for _, s := range items {
		p.printSlot(s, " (expired)")
		p.printf("\n  [1] completed  [2] not done (record reason)  [3] extend\n")
		p.printf("  [4] shelve  [5] edit description  [6] edit value note  [0] skip\n")
		if !p.triageChoice(s, true) {
			return false
		}
	}
	return true
}

// triageChoice applies one menu selection to slot s. expired switches the
// meaning of options 1 and 2 between the two menus.
func (p *Planner) triageChoice(s *model.Schedule, expired bool) bool {
	for {
		line, ok := p.prompt("Choice (0-6, default 0): ")
		if !ok {
			return false
		}
		if line == "" {
			line = "0"
		}
		ref := ByID(s.ID)
		switch line {
		case "0":
			return true
		case "1":
			status := model.StatusInProgress
			if expired {
				status = model.StatusCompleted
			}
			p.setStatus(ref, status)
			return true
		case "2":
			if expired {
				reason, ok := p.prompt("Reason it was not finished (optional): ")
				if !ok {
					return false
				}
				status := model.StatusNotStarted
				if _, err := p.reg.Update(ref, UpdateParams{Status: &status}); err != nil {
					p.printf("[ERROR] %v\n", err)
				}
				if reason != "" {
					desc := s.Description
					if desc != "" {
						desc += "\n"
					}
					desc += "Not completed: " + reason
					if _, err := p.reg.Update(ref, UpdateParams{Description: &desc}); err != nil {
						p.printf("[ERROR] %v\n", err)
					}
				}
				p.printf("[OK] marked not_started\n")
			} else {
				p.setStatus(ref, model.StatusCompleted)
			}
			return true
		case "3":
			if !p.extendPrompt(ref) {
				return false
			}
			return true
		case "4":
			p.setStatus(ref, model.StatusShelved)
			return true
		case "5":
			text, ok := p.prompt("New description (\\n for newline, blank clears): ")
			if !ok {
				return false
			}
			desc := unescape(text)
			if _, err := p.reg.Update(ref, UpdateParams{Description: &desc}); err != nil {
				p.printf("[ERROR] %v\n", err)
			} else {
				p.printf("[OK] description updated\n")
			}
			return true
		case "6":
			text, ok := p.prompt("New value note (\\n for newline, blank clears): ")
			if !ok {
				return false
			}
			value := unescape(text)
			if _, err := p.reg.Update(ref, UpdateParams{ValueNote: &value}); err != nil {
				p.printf("[ERROR] %v\n", err)
			} else {
				p.printf("[OK] value note updated\n")
			}
			return true
		default:
			p.printf("Enter a number between 0 and 6.\n")
		}
	}
}

func (p *Planner) setStatus(ref Ref, status model.Status) {
	if _, err := p.reg.Update(ref, UpdateParams{Status: &status}); err != nil {
		p.printf("[ERROR] %v\n", err)
		return
	}
	p.printf("[OK] status set to %s\n", status)
}

func (p *Planner) extendPrompt(ref Ref) bool {
	for {
		line, ok := p.prompt("Extend by (e.g. \"1.5 hours\", \"30 minutes\"): ")
		if !ok {
			return false
		}
		minutes, err := ParseExtension(line)
		if err != nil {
			p.printf("%v\n", err)
			continue
		}
		s, err := p.reg.Extend(ref, minutes)
		if err != nil {
			p.printf("[ERROR] %v\n", err)
		} else {
			p.printf("[OK] extended, new end: %s\n", s.End)
		}
		return true
	}
}

// generate runs the bulk slot creation: total duration, per-slot unit,
// start time, naming template, default status, per-slot detail capture,
// then a chronological batch insert.
func (p *Planner) generate() error {
	p.rule("Generate slots")

	var totalHours float64
	for {
		line, ok := p.prompt("Total duration to plan, in hours (e.g. 8 or 8.5): ")
		if !ok {
			return nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || v <= 0 {
			p.printf("Enter a number greater than zero.\n")
			continue
		}
		totalHours = v
		break
	}

	var unitMinutes float64
	for {
		line, ok := p.prompt("Duration of each slot (e.g. \"1 hour\", \"40 minutes\"): ")
		if !ok {
			return nil
		}
		v, err := ParseExtension(line)
		if err != nil {
			p.printf("%v\n", err)
			continue
		}
		if v <= 0 {
			p.printf("Slot duration must be greater than zero.\n")
			continue
		}
		if v > totalHours*60 {
			p.printf("Slot duration (%.2fh) cannot exceed the total (%.2fh).\n", v/60, totalHours)
			continue
		}
		unitMinutes = v
		break
	}

	line, ok := p.prompt("Start time (YYYY-MM-DD HH:MM, blank = now): ")
	if !ok {
		return nil
	}
	var startDT time.Time
	if line == "" {
		startDT = floorToFiveMinutes(p.reg.now())
	} else {
		dt, err := model.ParseStamp(normalizeStamp(line))
		if err != nil {
			p.printf("%v — using the current time instead\n", err)
			startDT = floorToFiveMinutes(p.reg.now())
		} else {
			startDT = dt
		}
	}

	template, ok := p.prompt("Task name template ({n} = slot number, blank = \"Task {n}\"): ")
	if !ok {
		return nil
	}
	if template == "" {
		template = "Task {n}"
	}

	defaultStatus := model.StatusNotStarted
	for {
		line, ok := p.prompt("Default status (blank = not_started): ")
		if !ok {
			return nil
		}
		if line == "" {
			break
		}
		st := model.Status(line)
		if !st.Valid() {
			p.printf("Invalid status. Valid: completed, in_progress, not_started, shelved, postponed.\n")
			continue
		}
		defaultStatus = st
		break
	}

	totalMinutes := totalHours * 60
	count := int(totalMinutes / unitMinutes)
	remainder := totalMinutes - float64(count)*unitMinutes
	if count == 0 {
		p.printf("[ERROR] slot duration exceeds the total; nothing to generate\n")
		return nil
	}

	p.printf("\nPreview:\n")
	p.printf("  total: %.2f hours, %d slot(s) of %.0f minutes each\n", totalHours, count, unitMinutes)
	p.printf("  starting at %s\n", startDT.Format(model.MinuteLayout))
	if remainder > 0 {
		p.printf("  %.0f leftover minute(s) will not be scheduled\n", remainder)
	}
	p.printf("  template: %s, default status: %s\n\n", template, defaultStatus)

	descriptions, ok := p.captureDetails(count, startDT, unitMinutes, template, "description")
	if !ok {
		return nil
	}
	values, ok := p.captureDetails(count, startDT, unitMinutes, template, "value note")
	if !ok {
		return nil
	}

	yes, ok := p.confirm("Generate? (Y/n): ", true)
	if !ok {
		return nil
	}
	if !yes {
		p.printf("Cancelled.\n")
		return nil
	}

	created := 0
	cur := startDT
	for i := 0; i < count; i++ {
		next := cur.Add(time.Duration(unitMinutes * float64(time.Minute)))
		s, err := p.reg.Add(AddParams{
			Start:       cur.Format(model.MinuteLayout),
			End:         next.Format(model.MinuteLayout),
			Task:        strings.ReplaceAll(template, "{n}", strconv.Itoa(i+1)),
			Status:      defaultStatus,
			Description: descriptions[i],
			ValueNote:   values[i],
		})
		if err != nil {
			p.printf("[ERROR] slot %d: %v\n", i+1, err)
		} else {
			created++
			p.printf("[%d] %s  %s ~ %s\n", s.ID, s.Task, s.Start, s.End)
		}
		cur = next
	}
	p.printf("\n[OK] generated %d/%d slot(s)\n", created, count)
	return nil
}

// captureDetails prompts once per slot for a free-text field, showing the
// slot's window alongside. \n sequences become real newlines.
func (p *Planner) captureDetails(count int, start time.Time, unitMinutes float64, template, what string) ([]string, bool) {
	p.printf("Set a %s for each slot (blank to skip, \\n for newline):\n", what)
	out := make([]string, count)
	for i := 0; i < count; i++ {
		slotStart := start.Add(time.Duration(unitMinutes * float64(i) * float64(time.Minute)))
		slotEnd := slotStart.Add(time.Duration(unitMinutes * float64(time.Minute)))
		name := strings.ReplaceAll(template, "{n}", strconv.Itoa(i+1))
		line, ok := p.prompt(fmt.Sprintf("[%d/%d] %s (%s ~ %s): ",
			i+1, count, name, slotStart.Format(model.MinuteLayout), slotEnd.Format(model.MinuteLayout)))
		if !ok {
			return nil, false
		}
		out[i] = unescape(line)
	}
	return out, true
}

func (p *Planner) printSlot(s *model.Schedule, suffix string) {
	p.printf("\n[%d] %s\n", s.ID, s.Task)
	p.printf("    %s ~ %s%s\n", s.Start, s.End, suffix)
	p.printf("    status: %s\n", s.Status)
	printMultiline(p.out, "    description: ", s.Description)
	printMultiline(p.out, "    value: ", s.ValueNote)
}

func (p *Planner) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Planner) rule(title string) {
	p.printf("%s\n%s\n", strings.Repeat("=", 60), title)
}

// prompt prints msg and reads one trimmed line; ok is false once input is
// exhausted, which cancels the workflow.
func (p *Planner) prompt(msg string) (string, bool) {
	p.printf("%s", msg)
	if !p.in.Scan() {
		p.printf("\n(input closed, stopping)\n")
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *Planner) confirm(msg string, def bool) (bool, bool) {
	for {
		line, ok := p.prompt(msg)
		if !ok {
			return false, false
		}
		switch strings.ToLower(line) {
		case "":
			return def, true
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		p.printf("Please answer y or n.\n")
	}
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// normalizeStamp tidies operator-typed timestamps: full-width colons and
// collapsed runs of whitespace.
func normalizeStamp(s string) string {
	s = strings.ReplaceAll(s, "：", ":")
	return strings.Join(strings.Fields(s), " ")
}

func floorToFiveMinutes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()-t.Minute()%5, 0, 0, t.Location())
}

// printMultiline prints a labeled field, indenting continuation lines when
// the value embeds newlines. Empty values are omitted.
func printMultiline(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	lines := strings.Split(value, "\n")
	if len(lines) == 1 {
		fmt.Fprintf(w, "%s%s\n", label, value)
		return
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(label, " "))
	for _, line := range lines {
		fmt.Fprintf(w, "        %s\n", line)
	}
}
