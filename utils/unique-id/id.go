package uniqueid

import "sync"

// UniqueID numera las simulaciones que recibe el servidor. Los ids empiezan en 1, crecen
// de a uno y no se reutilizan aunque la caché descarte el resultado.
type UniqueID struct {
	mu       sync.Mutex
	ultimoID int
}

func Init() *UniqueID {
	return &UniqueID{}
}

func (u *UniqueID) GetUniqueID() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ultimoID++
	return u.ultimoID
}

// Emitido indica si el id ya fue entregado alguna vez. Permite distinguir un id que nunca
// existió de uno cuyo resultado ya no está guardado.
func (u *UniqueID) Emitido(id int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return id >= 1 && id <= u.ultimoID
}
