/*
Package domain contains the core data model of the converter.

It defines the fundamental entities of a deterministic Turing machine
description: Commands (transitions), the Alphabet, the Tape, and the
assembled Configuration. This package is kept pure and free of I/O;
parsing and serialization live in separate packages.

# Key Entities

  - Command: one deterministic transition (state, symbol read, symbol
    written, next state, head move).
  - Configuration: the complete machine description handed to simulator
    and visualizer tooling.
  - Builder: accumulates directives during the single parse pass and
    enforces the required-field and last-declaration-wins invariants.
*/
package domain
