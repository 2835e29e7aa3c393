package reservation

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Status состояние транзакции бронирования
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusRolledBack Status = "rolled_back"
)

// Index часть индекса занятости, которую меняет транзакция
type Index interface {
	MarkOccupied(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) bool
	Unmark(date domain.DateKey, slot domain.TimeSlot, table domain.TableID) bool
}

// Transaction оптимистично примененное бронирование
type Transaction struct {
	ID        uuid.UUID
	Draft     Draft
	Payload   domain.Booking
	Slots     []domain.TimeSlot
	Status    Status
	CreatedAt time.Time
	// ConfirmedIn номер запроса записей, актуального на момент подтверждения
	ConfirmedIn uint64
}

type claimKey struct {
	date  domain.DateKey
	slot  domain.TimeSlot
	table domain.TableID
}

// claim учет живых транзакций на одну отметку индекса.
// introduced - отметку добавила транзакция, а не построение индекса.
type claim struct {
	live       int
	introduced bool
}

// Ledger журнал оптимистичных бронирований.
// Commit сразу отмечает слоты занятыми, Rollback снимает только те отметки,
// которые добавлены транзакциями и больше никем не удерживаются.
type Ledger struct {
	index  Index
	txs    map[uuid.UUID]*Transaction
	claims map[claimKey]*claim
	newID  func() uuid.UUID
	now    func() time.Time
}

// NewLedger создает журнал поверх индекса
func NewLedger(index Index) *Ledger {
	return &Ledger{
		index:  index,
		txs:    make(map[uuid.UUID]*Transaction),
		claims: make(map[claimKey]*claim),
		newID:  uuid.New,
		now:    time.Now,
	}
}

// Commit применяет черновик к индексу: каждый слот серии отмечается занятым.
// Отметки остаются до Rollback независимо от ответа сервера.
func (l *Ledger) Commit(draft *Draft) *Transaction {
	tx := &Transaction{
		ID:        l.newID(),
		Draft:     *draft,
		Payload:   draft.Payload(),
		Slots:     draft.Slots(),
		Status:    StatusPending,
		CreatedAt: l.now(),
	}

	l.claim(tx)
	l.txs[tx.ID] = tx

	out := *tx
	return &out
}

// Confirm фиксирует транзакцию после успешного ответа сервера.
// generation - номер последнего выданного запроса записей: ответы на этот
// и более ранние запросы могут еще не содержать бронирование.
func (l *Ledger) Confirm(id uuid.UUID, generation uint64) (*Transaction, error) {
	tx, err := l.pending(id)
	if err != nil {
		return nil, err
	}
	tx.Status = StatusConfirmed
	tx.ConfirmedIn = generation

	out := *tx
	return &out, nil
}

// Rollback откатывает оптимистичные отметки транзакции
func (l *Ledger) Rollback(id uuid.UUID) (*Transaction, error) {
	tx, err := l.pending(id)
	if err != nil {
		return nil, err
	}

	for _, slot := range tx.Slots {
		key := claimKey{date: tx.Draft.Date, slot: slot, table: tx.Draft.Table}
		c, ok := l.claims[key]
		if !ok {
			continue
		}
		c.live--
		if c.live > 0 {
			continue
		}
		if c.introduced {
			l.index.Unmark(key.date, key.slot, key.table)
		}
		delete(l.claims, key)
	}

	tx.Status = StatusRolledBack
	delete(l.txs, id)

	out := *tx
	return &out, nil
}

// Reapply переносит транзакции на индекс, построенный по ответу на запрос
// generation. Подтвержденная транзакция забывается, только если запрос выдан
// после подтверждения и, значит, ее бронирование уже есть в данных сервера.
func (l *Ledger) Reapply(index Index, generation uint64) {
	l.index = index
	l.claims = make(map[claimKey]*claim)

	for id, tx := range l.txs {
		if tx.Status == StatusConfirmed && generation > tx.ConfirmedIn {
			delete(l.txs, id)
			continue
		}
		l.claim(tx)
	}
}

// Pending возвращает ожидающие ответа транзакции в порядке создания
func (l *Ledger) Pending() []Transaction {
	out := make([]Transaction, 0, len(l.txs))
	for _, tx := range l.txs {
		if tx.Status == StatusPending {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (l *Ledger) claim(tx *Transaction) {
	for _, slot := range tx.Slots {
		key := claimKey{date: tx.Draft.Date, slot: slot, table: tx.Draft.Table}
		added := l.index.MarkOccupied(key.date, key.slot, key.table)
		c, ok := l.claims[key]
		if !ok {
			c = &claim{introduced: added}
			l.claims[key] = c
		}
		c.live++
	}
}

func (l *Ledger) pending(id uuid.UUID) (*Transaction, error) {
	tx, ok := l.txs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	if tx.Status != StatusPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrTransactionSettled, id, tx.Status)
	}
	return tx, nil
}
