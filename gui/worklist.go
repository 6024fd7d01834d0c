package gui

// worklist is an ordered set of elements awaiting validation. Links live in a
// side table indexed by ElementID so the element record holds no list node.
type worklist struct {
	head, tail ElementID
	links      []worklistLink
	count      int
}

type worklistLink struct {
	prev, next ElementID
	queued     bool
}

// grow makes room for handles below n.
func (w *worklist) grow(n int) {
	for len(w.links) < n {
		w.links = append(w.links, worklistLink{})
	}
}

// push appends id. Pushing a queued element is a no-op.
func (w *worklist) push(id ElementID) {
	l := &w.links[id]
	if l.queued {
		return
	}
	l.queued = true
	l.prev = w.tail
	l.next = NoElement
	if w.tail != NoElement {
		w.links[w.tail].next = id
	} else {
		w.head = id
	}
	w.tail = id
	w.count++
}

func (w *worklist) remove(id ElementID) {
	l := &w.links[id]
	if !l.queued {
		return
	}
	if l.prev != NoElement {
		w.links[l.prev].next = l.next
	} else {
		w.head = l.next
	}
	if l.next != NoElement {
		w.links[l.next].prev = l.prev
	} else {
		w.tail = l.prev
	}
	*l = worklistLink{}
	w.count--
}

func (w *worklist) front() ElementID {
	return w.head
}

func (w *worklist) contains(id ElementID) bool {
	return int(id) < len(w.links) && w.links[id].queued
}

func (w *worklist) len() int {
	return w.count
}
