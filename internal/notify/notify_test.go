package notify

import (
	"reflect"
	"testing"
)

type recorder struct {
	name     string
	received []int
	order    *[]string
}

func (r *recorder) Notify(v int) {
	r.received = append(r.received, v)
	if r.order != nil {
		*r.order = append(*r.order, r.name)
	}
}

func TestNotifyAllDeliversInRegistrationOrder(t *testing.T) {
	var reg Registry[int]
	var order []string
	a := &recorder{name: "a", order: &order}
	b := &recorder{name: "b", order: &order}
	c := &recorder{name: "c", order: &order}
	reg.Add(a)
	reg.Add(b)
	reg.Add(c)

	reg.NotifyAll(7)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("delivery order = %v, want %v", order, want)
	}
	for _, r := range []*recorder{a, b, c} {
		if !reflect.DeepEqual(r.received, []int{7}) {
			t.Errorf("%s received %v, want [7]", r.name, r.received)
		}
	}
}

func TestNotifyAllPrunesClosedEntries(t *testing.T) {
	var reg Registry[int]
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	ha := reg.Add(a)
	reg.Add(b)

	reg.NotifyAll(1)
	ha.Close()
	reg.NotifyAll(2)

	if !reflect.DeepEqual(a.received, []int{1}) {
		t.Errorf("closed subscriber received %v, want [1]", a.received)
	}
	if !reflect.DeepEqual(b.received, []int{1, 2}) {
		t.Errorf("live subscriber received %v, want [1 2]", b.received)
	}
	if reg.Len() != 1 {
		t.Errorf("Len after prune = %d, want 1", reg.Len())
	}
}

func TestNotifyAllNoDeduplication(t *testing.T) {
	var reg Registry[int]
	a := &recorder{name: "a"}
	reg.Add(a)
	reg.Add(a)

	reg.NotifyAll(3)

	if !reflect.DeepEqual(a.received, []int{3, 3}) {
		t.Errorf("twice-registered subscriber received %v, want [3 3]", a.received)
	}
}

func TestCloseBeforeFirstNotify(t *testing.T) {
	var reg Registry[int]
	a := &recorder{name: "a"}
	reg.Add(a).Close()

	reg.NotifyAll(4)

	if len(a.received) != 0 {
		t.Errorf("closed-before-notify subscriber received %v, want none", a.received)
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0", reg.Len())
	}
}

func TestFuncSubscriber(t *testing.T) {
	var reg Registry[string]
	var got []string
	reg.Add(Func[string](func(s string) { got = append(got, s) }))

	reg.NotifyAll("hello")

	if !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("Func subscriber got %v", got)
	}
}
