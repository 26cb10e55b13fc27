package entities

import "testing"

var allStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func TestIsValidTransition(t *testing.T) {
	valid := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending:    {OrderStatusProcessing: true, OrderStatusCancelled: true},
		OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
		OrderStatusShipped:    {OrderStatusDelivered: true, OrderStatusCancelled: true},
	}

	// Every pair outside the six defined edges must be rejected, including
	// self-loops and backward edges.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := valid[from][to]
			if got := IsValidTransition(from, to); got != want {
				t.Fatalf("IsValidTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestIsValidTransition_UnknownStatus(t *testing.T) {
	if IsValidTransition("unknown", OrderStatusProcessing) {
		t.Fatalf("unknown source status must have no edges")
	}
	if IsValidTransition(OrderStatusPending, "unknown") {
		t.Fatalf("unknown target status must not be reachable")
	}
}

func TestValidNextStatuses_Order(t *testing.T) {
	cases := []struct {
		from OrderStatus
		want []OrderStatus
	}{
		{OrderStatusPending, []OrderStatus{OrderStatusProcessing, OrderStatusCancelled}},
		{OrderStatusProcessing, []OrderStatus{OrderStatusShipped, OrderStatusCancelled}},
		{OrderStatusShipped, []OrderStatus{OrderStatusDelivered, OrderStatusCancelled}},
		{OrderStatusDelivered, []OrderStatus{}},
		{OrderStatusCancelled, []OrderStatus{}},
	}
	for _, tc := range cases {
		got := ValidNextStatuses(tc.from)
		if len(got) != len(tc.want) {
			t.Fatalf("ValidNextStatuses(%s) = %v, want %v", tc.from, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("ValidNextStatuses(%s) = %v, want %v", tc.from, got, tc.want)
			}
		}
	}
}

func TestValidNextStatuses_ReturnsCopy(t *testing.T) {
	got := ValidNextStatuses(OrderStatusPending)
	got[0] = OrderStatusDelivered
	if OrderStatusTransitions[OrderStatusPending][0] != OrderStatusProcessing {
		t.Fatalf("adjacency table must not be mutable through ValidNextStatuses")
	}
}

func TestStatusDescription_TotalOverStatuses(t *testing.T) {
	for _, s := range allStatuses {
		if StatusDescription(s) == "" {
			t.Fatalf("missing description for status %s", s)
		}
	}
}

func TestOrderPatch_IsEmpty(t *testing.T) {
	if !(OrderPatch{}).IsEmpty() {
		t.Fatalf("zero patch must be empty")
	}
	key := "31230599..."
	if (OrderPatch{NfeAccessKey: &key}).IsEmpty() {
		t.Fatalf("patch with nfe access key must not be empty")
	}
}
