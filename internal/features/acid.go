package features

import "github.com/Peritract/meld/internal/domain"

const (
	AcidDamage   = 3
	AcidDuration = 3
)

// AcidBlob - временная лужа кислоты. Обжигает того, кто в ней стоит,
// и растворяется при первом ожоге или по истечении срока.
type AcidBlob struct {
	Ident    domain.EntityID `json:"id"`
	Pos      domain.Position `json:"pos"`
	Damage   int             `json:"damage"`
	Duration int             `json:"duration"`
}

func NewAcidBlob(id domain.EntityID, damage, duration int) *AcidBlob {
	return &AcidBlob{Ident: id, Damage: damage, Duration: duration}
}

func (a *AcidBlob) ID() domain.EntityID       { return a.Ident }
func (a *AcidBlob) Name() string              { return "acid blob" }
func (a *AcidBlob) Position() domain.Position { return a.Pos }
func (a *AcidBlob) Interactable() bool        { return false }
func (a *AcidBlob) Expired() bool             { return a.Duration <= 0 }

func (a *AcidBlob) Interact(e *domain.Entity, area domain.Area) error {
	return domain.Impossible("There is nothing to do with the acid.")
}

// Land кладет кляксу на клетку падения и сразу жжет того, кто там стоит
func (a *AcidBlob) Land(at domain.Position, area domain.Area) {
	a.Pos = at
	area.AddFeature(a)
	a.burn(area)
}

func (a *AcidBlob) Update(area domain.Area) {
	if a.Expired() {
		return
	}
	if a.burn(area) {
		return
	}
	a.Duration--
}

func (a *AcidBlob) burn(area domain.Area) bool {
	victim := area.BlockerAt(a.Pos)
	if victim == nil {
		return false
	}
	area.Post(domain.NewMessage(domain.CategoryCombat, "Acid burns %s!", victim.Phrase()))
	victim.Body.TakeDamage(a.Damage)
	a.Duration = 0
	return true
}
