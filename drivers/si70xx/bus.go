package si70xx

import "thermohygro-go/errcode"

// readReg issues the command/register byte and reads n bytes back in the same
// transaction (repeated start). The result aliases the device buffer and is
// only valid until the next call.
func (d *Device) readReg(reg byte, n int) ([]byte, error) {
	d.w[0] = reg
	r := d.r[:n]
	if err := d.bus.Tx(d.Address, d.w[:1], r); err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "si70xx.read", err)
	}
	return r, nil
}

// readWord reads a big-endian 16-bit measurement (MSB then LSB).
func (d *Device) readWord(reg byte) (uint16, error) {
	b, err := d.readReg(reg, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}
