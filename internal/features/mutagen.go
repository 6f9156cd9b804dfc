package features

import "github.com/Peritract/meld/internal/domain"

const (
	MutagenPotency = 40
	MutagenUses    = 3
)

// MutagenPool - источник, глоток из которого расшатывает тело
type MutagenPool struct {
	Ident   domain.EntityID `json:"id"`
	Pos     domain.Position `json:"pos"`
	Potency int             `json:"potency"`
	Uses    int             `json:"uses"`
}

func NewMutagenPool(id domain.EntityID, pos domain.Position) *MutagenPool {
	return &MutagenPool{Ident: id, Pos: pos, Potency: MutagenPotency, Uses: MutagenUses}
}

func (m *MutagenPool) ID() domain.EntityID       { return m.Ident }
func (m *MutagenPool) Name() string              { return "mutagen pool" }
func (m *MutagenPool) Position() domain.Position { return m.Pos }
func (m *MutagenPool) Interactable() bool        { return m.Uses > 0 }
func (m *MutagenPool) Expired() bool             { return m.Uses <= 0 }
func (m *MutagenPool) Update(area domain.Area)   {}

func (m *MutagenPool) Interact(e *domain.Entity, area domain.Area) error {
	if m.Uses <= 0 {
		return domain.Impossible("The pool has dried up.")
	}
	m.Uses--
	e.Body.Instability += m.Potency
	area.Post(domain.NewMessage(domain.CategoryItem, "%s %s from the mutagen pool.", e.Phrase(), e.Conjugate("drink")))
	if m.Uses == 0 {
		area.Post(domain.NewMessage(domain.CategoryWorld, "The mutagen pool dries up."))
	}
	return nil
}
