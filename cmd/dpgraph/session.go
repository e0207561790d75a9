package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
	"github.com/viant/dpgraph/store"
)

// open loads the configured profile
func open(ctx context.Context) (*store.Store, *profile.Profile, error) {
	s := store.New()
	p, err := s.Load(ctx, settings.Profile)
	if err != nil {
		return nil, nil, err
	}
	return s, p, nil
}

// edit loads the profile, applies fn and saves the result if anything changed
func edit(cmd *cobra.Command, fn func(p *profile.Profile) error) error {
	ctx := cmd.Context()
	s, p, err := open(ctx)
	if err != nil {
		return err
	}
	if err = fn(p); err != nil {
		return err
	}
	if !p.Dirty() {
		return nil
	}
	_, err = s.Save(ctx, settings.Profile, p)
	return err
}

// position resolves a point reference, either a position or an ID
func position(p *profile.Profile, ref string) (int, error) {
	if index, err := strconv.Atoi(ref); err == nil {
		if index < 0 || index >= p.Len() {
			return 0, fmt.Errorf("point %v: %w", index, profile.ErrIndexOutOfRange)
		}
		return index, nil
	}
	if index := p.IndexOf(ref); index != -1 {
		return index, nil
	}
	return 0, fmt.Errorf("unknown point: %q", ref)
}

// positions resolves several point references
func positions(p *profile.Profile, refs ...string) ([]int, error) {
	var result = make([]int, 0, len(refs))
	for _, ref := range refs {
		index, err := position(p, ref)
		if err != nil {
			return nil, err
		}
		result = append(result, index)
	}
	return result, nil
}
