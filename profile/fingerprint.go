package profile

import "github.com/minio/highwayhash"

// fingerprintKey is fixed so fingerprints stay comparable across processes
var fingerprintKey = []byte("dpgraph-profile-fingerprint-key!")

// Fingerprint returns a hash of the persisted form; handles do not contribute
func (p *Profile) Fingerprint() (uint64, error) {
	data, err := p.Encode(YAML)
	if err != nil {
		return 0, err
	}
	return highwayhash.Sum64(data, fingerprintKey), nil
}
