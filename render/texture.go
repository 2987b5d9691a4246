package render

import "github.com/google/uuid"

// PixelFormat is the subset of buffer formats the engine negotiates.
type PixelFormat int

const (
	FormatARGB8888 = PixelFormat(iota)
	FormatXRGB8888
	FormatRGBX8888
	FormatRGBA8888
)

func (f PixelFormat) String() string {
	switch f {
	case FormatARGB8888:
		return "ARGB8888"
	case FormatXRGB8888:
		return "XRGB8888"
	case FormatRGBX8888:
		return "RGBX8888"
	case FormatRGBA8888:
		return "RGBA8888"
	default:
		return "unknown"
	}
}

// BufferKind identifies which import path produced a texture.
type BufferKind int

const (
	// CPU-resident shared memory, uploaded to the GPU
	BufferKindShm = BufferKind(iota)
	// GPU-resident dmabuf, imported without a copy
	BufferKindDmabuf
)

func (k BufferKind) String() string {
	switch k {
	case BufferKindShm:
		return "shm"
	case BufferKindDmabuf:
		return "dmabuf"
	default:
		return "unknown"
	}
}

// Texture is a backend-owned GPU resource shared by reference with the
// compositor.
//
// Holders never assume exclusive ownership. The underlying resource lives
// until the backend is explicitly told to release it by id; dropping a Go
// reference frees nothing.
type Texture interface {
	// Stable unique id, used for caching and for the release call
	ID() uuid.UUID
	Width() uint32
	Height() uint32
	// Pixel format, if the backend knows it
	Format() (PixelFormat, bool)
	HasAlpha() bool
	// Which import path created this texture
	BufferKind() BufferKind
}

// ShmBuffer is a CPU-resident pixel buffer handed in by a client.
type ShmBuffer struct {
	Width  uint32
	Height uint32
	Stride uint32
	Format PixelFormat
	Data   []byte
}

// DmabufBuffer describes a GPU-exported buffer to import without a copy.
type DmabufBuffer struct {
	Width    uint32
	Height   uint32
	Format   PixelFormat
	Modifier uint64
	// One file descriptor per plane in a real backend; the engine only
	// tracks the count.
	PlaneCount uint32
}

// DmabufFormat is one format/modifier combination a backend accepts,
// advertised for buffer negotiation with clients.
type DmabufFormat struct {
	Format    PixelFormat
	Modifiers []uint64
}
