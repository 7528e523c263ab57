// Package section defines the binary layout of the diff result buffer
// and the symbol payload.
//
// A result buffer is a 16-byte header followed by fixed 32-byte entry
// records, little-endian throughout:
//
//	Header:
//	  u16 major_version   (2)
//	  u16 minor_version   (1)
//	  u32 entry_count
//	  u64 total_length_including_header
//
//	Entry (32 bytes):
//	  u8  op              (0 Added, 1 Removed, 2 Modified)
//	  7B  reserved
//	  u64 path_id         (dense PathId in the low 32 bits)
//	  u32 left_offset
//	  u32 left_len
//	  u32 right_offset
//	  u32 right_len
//
// Any backwards-incompatible layout change increments the major version.
// The path text is not part of the result; hosts resolve it through the
// symbol payload, which is u32 count followed by one u32 length-prefixed
// UTF-8 path string per entry, in entry order.
package section
