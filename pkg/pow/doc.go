// Package pow solves and verifies the SHA-256 proof-of-work challenges used
// for proof-of-AI verification.
//
// A challenge is a random nonce string and a difficulty. The solution is the
// lowest decimal counter such that SHA-256(nonce + counter) starts with
// difficulty leading zero hex characters. Difficulty is calibrated so that
// solving is trivial for a program and tedious for a human: each additional
// level multiplies the expected work by sixteen.
package pow
