package astar

import "container/heap"

// frontierItem is one candidate. The same state may be queued many times;
// entries for closed states are skipped when popped.
type frontierItem[S comparable] struct {
	state    S
	priority float64
	sequence uint64
}

type priorityQueue[S comparable] []frontierItem[S]

func (queue priorityQueue[S]) Len() int { return len(queue) }
func (queue priorityQueue[S]) Less(i, j int) bool {
	if queue[i].priority != queue[j].priority {
		return queue[i].priority < queue[j].priority
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue[S]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue[S]) Push(x any) {
	*queue = append(*queue, x.(frontierItem[S]))
}

func (queue *priorityQueue[S]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// frontier is a min-priority queue with FIFO tie-breaking.
type frontier[S comparable] struct {
	queue    priorityQueue[S]
	sequence uint64
}

func (f *frontier[S]) Len() int { return f.queue.Len() }

func (f *frontier[S]) push(priority float64, state S) {
	heap.Push(&f.queue, frontierItem[S]{state: state, priority: priority, sequence: f.sequence})
	f.sequence++
}

func (f *frontier[S]) popMin() (S, float64, bool) {
	if f.queue.Len() == 0 {
		var zero S
		return zero, 0, false
	}
	item := heap.Pop(&f.queue).(frontierItem[S])
	return item.state, item.priority, true
}
