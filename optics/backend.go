package optics

// Backend abstracts where the array math runs. Propagators move the field
// through the backend once on entry and once on exit; the propagation
// algorithm itself never branches on array placement. A GPU implementation
// would copy to and from device buffers here.
type Backend interface {
	ToDevice(m [][]complex128) [][]complex128
	ToHost(m [][]complex128) [][]complex128
}

// Host is the default backend: arrays stay in process memory and both
// transfers are no-ops.
var Host Backend = hostBackend{}

type hostBackend struct{}

func (hostBackend) ToDevice(m [][]complex128) [][]complex128 { return m }

func (hostBackend) ToHost(m [][]complex128) [][]complex128 { return m }
