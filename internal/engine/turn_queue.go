package engine

import (
	"container/heap"

	"github.com/Peritract/meld/internal/domain"
)

// TurnItem обертка для элемента очереди приоритетов
type TurnItem struct {
	Value    *domain.Entity // Сама сущность
	Priority int            // Приоритет. Чем меньше, тем раньше ход.
	Seq      int            // Порядок добавления, разбивает ничьи
	Index    int            // Индекс в куче (нужен для update)
}

// TurnQueue реализует heap.Interface и хранит TurnItems
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	// MinHeap; при равном приоритете раньше тот, кто раньше пришел
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// Update изменяет приоритет элемента в очереди
func (pq *TurnQueue) Update(item *TurnItem, priority int) {
	item.Priority = priority
	heap.Fix(pq, item.Index)
}

// SpeedOrder раскладывает существ по скорости тела: быстрые ходят первыми.
// Исходный срез не меняется.
func SpeedOrder(entities []*domain.Entity) []*domain.Entity {
	pq := make(TurnQueue, 0, len(entities))
	for i, e := range entities {
		pq = append(pq, &TurnItem{Value: e, Priority: -e.Body.Speed(), Seq: i, Index: i})
	}
	heap.Init(&pq)

	out := make([]*domain.Entity, 0, len(entities))
	for pq.Len() > 0 {
		out = append(out, heap.Pop(&pq).(*TurnItem).Value)
	}
	return out
}
