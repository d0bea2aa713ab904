// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package walk discovers .class files across a filesystem root, whether
// loose on disk or bundled inside JAR/ZIP archives, and reports which
// archives carry a JAR signature block.
package walk

import (
	"encoding/hex"
	"errors"
	"reflect"
	"time"

	"go.mozilla.org/pkcs7"
)

// ErrNoSignature is returned by ParseSignatureBlock when a PKCS#7 block
// parses but carries no signer information.
var ErrNoSignature = errors.New("no parsable PKCS#7 signature block found")

// CertInfo wraps the fields of a signer's certificate that are worth
// surfacing to a caller.
type CertInfo struct {
	Issuer             string
	Subject            string
	NotBefore          time.Time
	NotAfter           time.Time
	SerialNumber       string
	SignatureAlgorithm string
	PublicKeyAlgorithm string
}

// SignatureInfo describes a JAR's signing block, reported purely
// descriptively: it never validates the certificate chain or acts as
// a trust authority.
type SignatureInfo struct {
	// SignerFile is the META-INF entry the block was read from, e.g.
	// "META-INF/CERT.RSA".
	SignerFile string
	Certs      []CertInfo
}

// ParseSignatureBlock parses a PKCS#7 SignedData block read from a
// META-INF/*.RSA or *.DSA jar entry and summarizes its signer
// certificates. It does not compute or check a digest and does not
// verify the certificate chain.
func ParseSignatureBlock(signerFile string, content []byte) (*SignatureInfo, error) {
	p7, err := pkcs7.Parse(content)
	if err != nil {
		return nil, err
	}
	if len(p7.Signers) == 0 {
		return nil, ErrNoSignature
	}

	info := &SignatureInfo{SignerFile: signerFile}

	for _, signer := range p7.Signers {
		serialNumber := signer.IssuerAndSerialNumber.SerialNumber
		for _, cert := range p7.Certificates {
			if !reflect.DeepEqual(cert.SerialNumber, serialNumber) {
				continue
			}

			ci := CertInfo{
				SerialNumber:       hex.EncodeToString(cert.SerialNumber.Bytes()),
				SignatureAlgorithm: cert.SignatureAlgorithm.String(),
				PublicKeyAlgorithm: cert.PublicKeyAlgorithm.String(),
				NotBefore:          cert.NotBefore,
				NotAfter:           cert.NotAfter,
			}

			if len(cert.Issuer.Country) > 0 {
				ci.Issuer = cert.Issuer.Country[0]
			}
			if len(cert.Issuer.Organization) > 0 {
				ci.Issuer += ", " + cert.Issuer.Organization[0]
			}
			ci.Issuer += ", " + cert.Issuer.CommonName

			if len(cert.Subject.Country) > 0 {
				ci.Subject = cert.Subject.Country[0]
			}
			if len(cert.Subject.Organization) > 0 {
				ci.Subject += ", " + cert.Subject.Organization[0]
			}
			ci.Subject += ", " + cert.Subject.CommonName

			info.Certs = append(info.Certs, ci)
			break
		}
	}

	return info, nil
}

// isSignatureEntry reports whether a zip entry name is a JAR signature
// block file, conventionally under META-INF/ with an .RSA, .DSA or .EC
// extension.
func isSignatureEntry(name string) bool {
	for _, suffix := range []string{".RSA", ".DSA", ".EC"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}
