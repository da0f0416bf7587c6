package contagiongo

import "testing"

func TestNodeStatus_String(t *testing.T) {
	cases := []struct {
		status NodeStatus
		want   string
	}{
		{Susceptible, "S"},
		{Infected, "I"},
		{Recovered, "R"},
		{NodeStatus(99), "?"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf(UnequalStringParameterError, "NodeStatus.String()", c.want, got)
		}
	}
}

func TestEventKind_DistinctValues(t *testing.T) {
	if EventTrans == EventRec {
		t.Errorf(ExpectedErrorWhileError, "EventTrans and EventRec to be distinct constants")
	}
}
