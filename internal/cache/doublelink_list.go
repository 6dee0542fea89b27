package cache

type LinkedListNode struct {
	Prev  *LinkedListNode
	Next  *LinkedListNode
	Value interface{}
}

// DoubleLinkedList keeps sentinel head and tail nodes so that insertion and
// removal never branch on the list ends.
type DoubleLinkedList struct {
	len  int64
	Head *LinkedListNode
	Tail *LinkedListNode
}

type List = DoubleLinkedList

func NewList() *List {
	list := &DoubleLinkedList{
		Head: &LinkedListNode{},
		Tail: &LinkedListNode{},
	}
	list.Head.Next = list.Tail
	list.Tail.Prev = list.Head
	return list
}

func (d *List) Len() int64 {
	return d.len
}

func (d *List) PushFront(value interface{}) *LinkedListNode {
	node := &LinkedListNode{Value: value}
	d.linkAfter(d.Head, node)
	d.len++
	return node
}

func (d *List) PushBack(value interface{}) *LinkedListNode {
	node := &LinkedListNode{Value: value}
	d.linkAfter(d.Tail.Prev, node)
	d.len++
	return node
}

// Back returns the last element or nil.
func (d *List) Back() *LinkedListNode {
	if d.len == 0 {
		return nil
	}
	return d.Tail.Prev
}

func (d *List) Front() *LinkedListNode {
	if d.len == 0 {
		return nil
	}
	return d.Head.Next
}

func (d *List) Remove(node *LinkedListNode) {
	d.unlink(node)
	d.len--
}

func (d *List) toHead(node *LinkedListNode) {
	if node == d.Head.Next {
		return
	}
	d.unlink(node)
	d.linkAfter(d.Head, node)
}

func (d *List) linkAfter(at, node *LinkedListNode) {
	node.Prev = at
	node.Next = at.Next
	at.Next.Prev = node
	at.Next = node
}

func (d *List) unlink(node *LinkedListNode) {
	node.Prev.Next = node.Next
	node.Next.Prev = node.Prev
	node.Prev = nil
	node.Next = nil
}
