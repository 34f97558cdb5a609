package policy

// AgentState is the reference concrete StateId for an autonomous agent's
// lifecycle, as tabulated in spec.md §4.2.
type AgentState string

// Agent lifecycle states.
const (
	Idle       AgentState = "IDLE"
	Init       AgentState = "INIT"
	GoalParse  AgentState = "GOAL_PARSE"
	Planning   AgentState = "PLANNING"
	Executing  AgentState = "EXECUTING"
	Validating AgentState = "VALIDATING"
	Reporting  AgentState = "REPORTING"
	Completed  AgentState = "COMPLETED"
	Error      AgentState = "ERROR"
	Terminated AgentState = "TERMINATED"
)

// AgentStates lists every state in the reference lifecycle, for callers
// that need the full set rather than just the policy edges (e.g.
// construction-time validation that initial_state belongs to it).
var AgentStates = []AgentState{
	Idle, Init, GoalParse, Planning, Executing, Validating, Reporting,
	Completed, Error, Terminated,
}

// Lifecycle returns the reference agent-lifecycle policy from spec.md
// §4.2. TERMINATED is the only state with an empty outgoing set.
func Lifecycle() *Policy[AgentState] {
	return New(map[AgentState][]AgentState{
		Idle:       {Init, Error, Terminated},
		Init:       {GoalParse, Error, Terminated, Idle},
		GoalParse:  {Planning, Error, Terminated, Idle},
		Planning:   {Planning, Executing, Error, Terminated, Idle},
		Executing:  {Executing, Validating, Reporting, Error, Terminated, Idle},
		Validating: {Validating, Completed, Reporting, Executing, Error, Terminated, Idle},
		Reporting:  {Validating, Reporting, Completed, Error, Terminated, Idle},
		Completed:  {Terminated, Idle},
		Error:      {Terminated, Idle},
		Terminated: {},
	})
}
