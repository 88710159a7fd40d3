package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every feature surface that mounts routes on the
// gateway router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
