package flows

import (
	"bytes"
	"encoding/binary"
)

// Narration audio comes back from the speech model as raw PCM samples:
// one channel, 16-bit little-endian, 24kHz. The model does not provide a
// container, so a playable WAV is assembled locally.
const (
	wavChannels   = 1
	wavSampleRate = 24000
	wavBitDepth   = 16
)

// wavContainer wraps raw PCM samples in a RIFF/WAVE container.
func wavContainer(pcm []byte) []byte {
	const headerSize = 44
	blockAlign := wavChannels * wavBitDepth / 8
	byteRate := wavSampleRate * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(pcm)))
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16)) // PCM fmt chunk size
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	_ = binary.Write(buf, binary.LittleEndian, uint16(wavChannels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(wavSampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(wavBitDepth))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
