// Package hardware is the base package for the Atari 800 XL emulation. It
// and its sub-packages contain everything required for a headless
// emulation.
//
// The Atari type is the root of the emulation and contains external
// references to all of the machine's sub-systems. From here, the emulation
// can either be run continuously, frame by frame, or stepped scanline by
// scanline.
package hardware
