package plan

import (
	"fmt"

	"duesseldorf-family-adventures/internal/models"
)

const (
	// Parent-script sessions stay short regardless of the criteria's
	// available window.
	minScriptMinutes = 6
	maxScriptMinutes = 20
	scriptPhases     = 5
)

type scriptPhase struct {
	name        string
	instruction string
}

var scriptPhaseOrder = []scriptPhase{
	{"Describe", "Beschreibe ruhig, was dein Kind gerade tut, ohne Fragen zu stellen. / Calmly describe what your child is doing, without asking questions."},
	{"Imitate", "Ahme die Spielidee deines Kindes nach und lass es führen. / Imitate your child's play idea and let them lead."},
	{"Praise", "Lobe konkret und sofort, was gut gelingt. / Praise concretely and immediately what is going well."},
	{"Active listening", "Wiederhole die Worte deines Kindes in ganzen Sätzen. / Repeat your child's words back in full sentences."},
}

// ApplyParentScript replaces the plan's steps with a timed parent-child
// interaction script. The session total is the available window clamped
// to 6-20 minutes, split evenly over four coached phases with the
// remainder going to a final child-led repeat phase.
func ApplyParentScript(plan *models.ActivityPlan, availableMinutes int) {
	total := availableMinutes
	if total < minScriptMinutes {
		total = minScriptMinutes
	}
	if total > maxScriptMinutes {
		total = maxScriptMinutes
	}

	perPhase := total / scriptPhases
	steps := make([]string, 0, scriptPhases)
	for _, phase := range scriptPhaseOrder {
		steps = append(steps, fmt.Sprintf("%s (%d min): %s", phase.name, perPhase, phase.instruction))
	}
	remainder := total - perPhase*len(scriptPhaseOrder)
	steps = append(steps, fmt.Sprintf(
		"Child-led repeat (%d min): Dein Kind wählt eine Phase zum Wiederholen aus. / Your child picks one phase to repeat.",
		remainder))

	plan.Steps = steps
	plan.Summary = fmt.Sprintf(
		"%d-Minuten-Interaktionsskript für Eltern und Kind: %s / %d-minute parent-child interaction script.",
		total, plan.Title, total)
}
