package admin

import (
	"fmt"
	"hash"

	"github.com/zkfungible/fungible-go-base/cbor"
	abhash "github.com/zkfungible/fungible-go-base/hash"
	"github.com/zkfungible/fungible-go-base/types"
)

/*
AdminState is the full set of packed configuration slots persisted by
the token admin contract: the mint+burn permission pair, the mint+burn
dynamic-proof pair and the two independently stored amount ranges.

The slot scalars themselves are immutable values — the Set* updaters
replace a slot with a newly packed scalar and, for the pair slots,
preserve the untouched sibling group's bits unchanged.
*/
type AdminState struct {
	_           struct{}     `cbor:",toarray"`
	Permissions types.Scalar `json:"permissions"` // packed mint+burn permission flag pair
	ProofConfig types.Scalar `json:"proofConfig"` // packed mint+burn dynamic-proof flag pair
	MintAmounts types.Scalar `json:"mintAmounts"` // packed mint amount range
	BurnAmounts types.Scalar `json:"burnAmounts"` // packed burn amount range
}

// NewDefaultState returns the state holding the named default
// configuration of every family.
func NewDefaultState() *AdminState {
	return &AdminState{
		Permissions: PackPermissions(DefaultMintPermissions, DefaultBurnPermissions),
		ProofConfig: PackProofConfig(DefaultMintProofFlags, DefaultBurnProofFlags),
		MintAmounts: DefaultMintAmountRange.Pack(),
		BurnAmounts: DefaultBurnAmountRange.Pack(),
	}
}

/*
Validate unpacks every slot and checks the structural invariants of the
configuration groups. It must be invoked before the state is trusted in
a decision — unpacking alone does not validate.
*/
func (s *AdminState) Validate() error {
	mp, bp, err := UnpackPermissions(s.Permissions)
	if err != nil {
		return fmt.Errorf("permissions slot: %w", err)
	}
	if err := mp.Validate(); err != nil {
		return fmt.Errorf("mint permissions: %w", err)
	}
	if err := bp.Validate(); err != nil {
		return fmt.Errorf("burn permissions: %w", err)
	}
	if _, _, err := UnpackProofConfig(s.ProofConfig); err != nil {
		return fmt.Errorf("proof config slot: %w", err)
	}
	mr, err := UnpackAmountRange(s.MintAmounts)
	if err != nil {
		return fmt.Errorf("mint amounts slot: %w", err)
	}
	if err := mr.Validate(); err != nil {
		return fmt.Errorf("mint amounts: %w", err)
	}
	br, err := UnpackAmountRange(s.BurnAmounts)
	if err != nil {
		return fmt.Errorf("burn amounts slot: %w", err)
	}
	if err := br.Validate(); err != nil {
		return fmt.Errorf("burn amounts: %w", err)
	}
	return nil
}

func (s *AdminState) MintPermissions() (MintPermissions, error) {
	m, _, err := UnpackPermissions(s.Permissions)
	return m, err
}

func (s *AdminState) BurnPermissions() (BurnPermissions, error) {
	_, b, err := UnpackPermissions(s.Permissions)
	return b, err
}

func (s *AdminState) MintProofFlags() (MintProofFlags, error) {
	m, _, err := UnpackProofConfig(s.ProofConfig)
	return m, err
}

func (s *AdminState) BurnProofFlags() (BurnProofFlags, error) {
	_, b, err := UnpackProofConfig(s.ProofConfig)
	return b, err
}

func (s *AdminState) MintAmountRange() (AmountRange, error) {
	return UnpackAmountRange(s.MintAmounts)
}

func (s *AdminState) BurnAmountRange() (AmountRange, error) {
	return UnpackAmountRange(s.BurnAmounts)
}

// SetMintPermissions validates the group and replaces the mint half of
// the permission slot, the burn half is preserved.
func (s *AdminState) SetMintPermissions(m MintPermissions) error {
	if err := m.Validate(); err != nil {
		return err
	}
	packed, err := m.UpdatePacked(s.Permissions)
	if err != nil {
		return err
	}
	s.Permissions = packed
	return nil
}

// SetBurnPermissions validates the group and replaces the burn half of
// the permission slot, the mint half is preserved.
func (s *AdminState) SetBurnPermissions(b BurnPermissions) error {
	if err := b.Validate(); err != nil {
		return err
	}
	packed, err := b.UpdatePacked(s.Permissions)
	if err != nil {
		return err
	}
	s.Permissions = packed
	return nil
}

func (s *AdminState) SetMintProofFlags(m MintProofFlags) error {
	packed, err := m.UpdatePacked(s.ProofConfig)
	if err != nil {
		return err
	}
	s.ProofConfig = packed
	return nil
}

func (s *AdminState) SetBurnProofFlags(b BurnProofFlags) error {
	packed, err := b.UpdatePacked(s.ProofConfig)
	if err != nil {
		return err
	}
	s.ProofConfig = packed
	return nil
}

func (s *AdminState) SetMintAmountRange(r AmountRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.MintAmounts = r.Pack()
	return nil
}

func (s *AdminState) SetBurnAmountRange(r AmountRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.BurnAmounts = r.Pack()
	return nil
}

func (s *AdminState) Write(hasher abhash.Hasher) {
	hasher.Write(s)
}

// Hash returns the digest of the state using the given hash function.
func (s *AdminState) Hash(h hash.Hash) ([]byte, error) {
	hasher := abhash.New(h)
	s.Write(hasher)
	return hasher.Sum()
}

func (s *AdminState) Copy() *AdminState {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// AdminStateVersion is the layout version of the serialized state.
const AdminStateVersion cbor.Version = 1

// Bytes serializes the state as a version-prefixed CBOR blob.
func (s *AdminState) Bytes() ([]byte, error) {
	return cbor.MarshalVersioned(AdminStateVersion, s)
}

func AdminStateFromBytes(data []byte) (*AdminState, error) {
	ver, payload, err := cbor.UnmarshalVersioned(data)
	if err != nil {
		return nil, fmt.Errorf("decoding admin state: %w", err)
	}
	if ver != AdminStateVersion {
		return nil, fmt.Errorf("invalid admin state version: expected %d, got %d", AdminStateVersion, ver)
	}
	s := &AdminState{}
	if err := cbor.Unmarshal(payload, s); err != nil {
		return nil, fmt.Errorf("decoding admin state: %w", err)
	}
	return s, nil
}
