package mansion

// Room names of the Blackwood blueprint.
const (
	Hall           = "Hall de Entrada"
	LivingRoom     = "Sala de Estar"
	Kitchen        = "Cozinha"
	Library        = "Biblioteca"
	WinterGarden   = "Jardim de Inverno"
	Pantry         = "Despensa"
	MasterBedroom  = "Quarto Principal"
	SecretStudy    = "Escritório Secreto (Culpado!)"
	BackPorch      = "Varanda dos Fundos"
	DampBasement   = "Porão Úmido"
	LuxuryBathroom = "Banheiro Luxuoso"
	EmptyCloset    = "Closet Vazio"
)

// BlackwoodRooms is the number of rooms Blackwood builds.
const BlackwoodRooms = 12

// Blackwood builds the Blackwood mansion map and returns its root, the
// entrance hall.
//
//	Hall de Entrada
//	├── Sala de Estar
//	│   ├── Biblioteca ── (left) Escritório Secreto
//	│   └── Jardim de Inverno ── (right) Varanda dos Fundos
//	└── Cozinha
//	    ├── Despensa ── (left) Porão Úmido
//	    └── Quarto Principal ── Banheiro Luxuoso | Closet Vazio
func Blackwood() *Room {
	return NewRoom(Hall).Attach(
		NewRoom(LivingRoom).Attach(
			NewRoom(Library).Attach(NewRoom(SecretStudy), nil),
			NewRoom(WinterGarden).Attach(nil, NewRoom(BackPorch)),
		),
		NewRoom(Kitchen).Attach(
			NewRoom(Pantry).Attach(NewRoom(DampBasement), nil),
			NewRoom(MasterBedroom).Attach(NewRoom(LuxuryBathroom), NewRoom(EmptyCloset)),
		),
	)
}
