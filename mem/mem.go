// Package mem implements the physical memory map of the emulated machine:
// a registry of disjoint address ranges within the 1 MiB real mode address
// space, each backed by RAM, firmware ROM or a memory mapped device.
package mem

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/retroenv/retro86/log"
)

// Size constants of the 20-bit physical address space.
const (
	Size        = 1 << 20   // 1MB address space
	AddressMask = Size - 1  // 20-bit address mask
	SegmentSize = 64 * 1024 // 64KB segment size
)

// Common memory map errors.
var (
	ErrUnmappedAddress   = errors.New("access to unmapped address")
	ErrOverlappingRegion = errors.New("region overlaps an existing mapping")
	ErrRegionBounds      = errors.New("region exceeds the address space")
)

// Backing is a backing store for a mapped region. Offsets are relative to
// the region start.
type Backing interface {
	Size() uint32
	ReadByte(offset uint32) uint8
	WriteByte(offset uint32, value uint8)
}

// region is one mapped address range, inclusive of start and end.
type region struct {
	start    uint32
	end      uint32
	backing  Backing
	readOnly bool
}

// Map dispatches physical memory accesses to mapped regions by range
// lookup. Unmapped addresses fail with ErrUnmappedAddress; writes to read
// only regions are silently dropped.
type Map struct {
	regions []region
	logger  *log.Logger
}

// New creates an empty memory map.
func New(logger *log.Logger) *Map {
	return &Map{logger: logger}
}

// MapRegion maps a backing store at the given start address. Read only
// regions ignore writes.
func (m *Map) MapRegion(start uint32, backing Backing, readOnly bool) error {
	end := uint64(start) + uint64(backing.Size()) - 1
	if start > AddressMask || end > AddressMask {
		return fmt.Errorf("%w: start 0x%05X size 0x%X", ErrRegionBounds, start, backing.Size())
	}

	r := region{
		start:    start,
		end:      uint32(end),
		backing:  backing,
		readOnly: readOnly,
	}
	for _, existing := range m.regions {
		if r.start <= existing.end && existing.start <= r.end {
			return fmt.Errorf("%w: 0x%05X-0x%05X overlaps 0x%05X-0x%05X",
				ErrOverlappingRegion, r.start, r.end, existing.start, existing.end)
		}
	}

	m.regions = append(m.regions, r)
	slices.SortFunc(m.regions, func(a, b region) bool {
		return a.start < b.start
	})

	if m.logger != nil {
		m.logger.Debug("mapped memory region",
			log.String("start", fmt.Sprintf("0x%05X", r.start)),
			log.String("end", fmt.Sprintf("0x%05X", r.end)),
			log.Bool("read_only", readOnly))
	}
	return nil
}

// lookup finds the region containing the masked physical address.
func (m *Map) lookup(addr uint32) (region, uint32, bool) {
	addr &= AddressMask
	for _, r := range m.regions {
		if addr >= r.start && addr <= r.end {
			return r, addr - r.start, true
		}
	}
	return region{}, 0, false
}

// Read8 reads a byte from the given physical address. The address wraps at
// 2^20 before lookup.
func (m *Map) Read8(addr uint32) (uint8, error) {
	r, offset, exists := m.lookup(addr)
	if !exists {
		return 0, fmt.Errorf("%w: read at 0x%05X", ErrUnmappedAddress, addr&AddressMask)
	}
	return r.backing.ReadByte(offset), nil
}

// Write8 writes a byte to the given physical address. Writes to read only
// regions are dropped.
func (m *Map) Write8(addr uint32, value uint8) error {
	r, offset, exists := m.lookup(addr)
	if !exists {
		return fmt.Errorf("%w: write at 0x%05X", ErrUnmappedAddress, addr&AddressMask)
	}
	if r.readOnly {
		if m.logger != nil {
			m.logger.Debug("dropped write to read only region",
				log.String("address", fmt.Sprintf("0x%05X", addr&AddressMask)),
				log.String("value", fmt.Sprintf("0x%02X", value)))
		}
		return nil
	}
	r.backing.WriteByte(offset, value)
	return nil
}

// RAM is a writable byte array region.
type RAM struct {
	data []uint8
}

// NewRAM creates a zeroed RAM region of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{data: make([]uint8, size)}
}

// Size returns the region size in bytes.
func (r *RAM) Size() uint32 {
	return uint32(len(r.data))
}

// ReadByte reads the byte at the given offset.
func (r *RAM) ReadByte(offset uint32) uint8 {
	return r.data[offset]
}

// WriteByte writes the byte at the given offset.
func (r *RAM) WriteByte(offset uint32, value uint8) {
	r.data[offset] = value
}

// ROM is a read only region backed by a firmware image. The image is copied
// to the end of the region; a machine maps it so that the topmost bytes
// form the reset vector.
type ROM struct {
	data []uint8
}

// NewROM creates a ROM region of the given size holding the image at its
// top. An image larger than the region is truncated to its trailing bytes.
func NewROM(size uint32, image []byte) *ROM {
	data := make([]uint8, size)
	if uint32(len(image)) > size {
		image = image[uint32(len(image))-size:]
	}
	copy(data[size-uint32(len(image)):], image)
	return &ROM{data: data}
}

// Size returns the region size in bytes.
func (r *ROM) Size() uint32 {
	return uint32(len(r.data))
}

// ReadByte reads the byte at the given offset.
func (r *ROM) ReadByte(offset uint32) uint8 {
	return r.data[offset]
}

// WriteByte is ignored, the region is read only. The memory map drops the
// write before it reaches the backing, this keeps direct use safe as well.
func (r *ROM) WriteByte(uint32, uint8) {
}
