package scanner

// Built-in security rule sets: hardcoded credentials, insecure crypto
// primitives, unsafe C library calls, and certificate material.

// HardcodedCredentialRules detect secrets committed into source.
func HardcodedCredentialRules() []PatternRule {
	return []PatternRule{
		{
			Name:            "aws_key",
			Pattern:         `(AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[0-9A-Z]{16}`,
			Severity:        "critical",
			MessageTemplate: "🔐 AWS access key detected: {matched}. This is a hardcoded credential and must be removed immediately.",
			FixTemplate:     "os.getenv('AWS_ACCESS_KEY_ID')",
			CaseSensitive:   true,
		},
		{
			Name:            "stripe_key",
			Pattern:         `(sk_live_|pk_live_|sk_test_|pk_test_)[A-Za-z0-9]{20,}`,
			Severity:        "critical",
			MessageTemplate: "🔐 Stripe API key detected: {matched}. This is a hardcoded credential and must be removed immediately.",
			FixTemplate:     "os.getenv('STRIPE_KEY')",
			CaseSensitive:   true,
		},
		{
			Name:            "github_token",
			Pattern:         `(ghp_|gho_|ghu_|ghs_|ghr_)[A-Za-z0-9_]{36,255}`,
			Severity:        "critical",
			MessageTemplate: "🔐 GitHub token detected: {matched}. This is a hardcoded credential and must be removed immediately.",
			FixTemplate:     "os.getenv('GITHUB_TOKEN')",
			CaseSensitive:   true,
		},
		{
			Name:            "jwt_token",
			Pattern:         `eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`,
			Severity:        "critical",
			MessageTemplate: "🔐 JWT token detected: {matched}. This is a hardcoded credential and must be removed immediately.",
			FixTemplate:     "os.getenv('JWT_TOKEN')",
			CaseSensitive:   true,
		},
		{
			Name:            "private_key",
			Pattern:         `-----BEGIN.*PRIVATE KEY-----`,
			Severity:        "critical",
			MessageTemplate: "🔐 Private key block detected. This is a hardcoded credential and must be removed immediately.",
			FixTemplate:     "# Load from secure key management system",
		},
		{
			Name:            "connection_string_with_creds",
			Pattern:         `(mongodb|mysql|postgres|mssql)://[^:]+:[^@]+@`,
			Severity:        "critical",
			MessageTemplate: "🔐 Connection string with credentials detected: {matched}. Move credentials to environment variables.",
			FixTemplate:     "os.getenv('DATABASE_URL')",
		},
		{
			Name:            "suspicious_password_var",
			Pattern:         `(password|secret|api_key|token|auth)\s*=\s*['"][^'"]{8,}['"]`,
			Severity:        "high",
			MessageTemplate: "⚠️  Suspicious variable assignment detected: {matched}. Review and move to environment variables.",
			FixTemplate:     "os.getenv('CREDENTIAL_NAME')",
		},
	}
}

// InsecureCryptoRules detect weak hash and cipher algorithms.
func InsecureCryptoRules() []PatternRule {
	return []PatternRule{
		{
			Name:            "md5_usage",
			Pattern:         `\b(MD5|md5)\b`,
			Severity:        "high",
			MessageTemplate: "🚫 MD5 hash algorithm detected: {matched}. MD5 is cryptographically broken. Use SHA-256 or stronger.",
			FixTemplate:     "SHA256",
		},
		{
			Name:            "sha1_usage",
			Pattern:         `\b(SHA-?1|sha-?1)\b`,
			Severity:        "high",
			MessageTemplate: "🚫 SHA-1 algorithm detected: {matched}. SHA-1 is deprecated. Use SHA-256 or stronger.",
			FixTemplate:     "SHA256",
		},
		{
			Name:            "des_usage",
			Pattern:         `\b(DES|des)\b`,
			Severity:        "high",
			MessageTemplate: "🚫 DES encryption detected: {matched}. DES is insecure. Use AES-256 or stronger.",
			FixTemplate:     "AES",
		},
		{
			Name:            "rc4_usage",
			Pattern:         `\b(RC4|rc4)\b`,
			Severity:        "high",
			MessageTemplate: "🚫 RC4 cipher detected: {matched}. RC4 is broken. Use AES-GCM or ChaCha20.",
			FixTemplate:     "ChaCha20",
		},
		{
			Name:            "blowfish_usage",
			Pattern:         `\b(Blowfish|blowfish)\b`,
			Severity:        "medium",
			MessageTemplate: "⚠️  Blowfish cipher detected: {matched}. Consider using AES-256 for better security.",
			FixTemplate:     "AES",
		},
	}
}

// InsecureCFunctionRules detect unsafe C library calls.
func InsecureCFunctionRules() []FunctionCallRule {
	return []FunctionCallRule{
		{
			Name:            "unsafe_gets",
			FunctionNames:   []string{"gets"},
			Severity:        "critical",
			MessageTemplate: "❌ Unsafe function '{function}()' detected at {file}:{line}. Replace with fgets() for bounds checking.",
			FixTemplate:     "fgets",
		},
		{
			Name:            "unsafe_strcpy",
			FunctionNames:   []string{"strcpy"},
			Severity:        "high",
			MessageTemplate: "❌ Unsafe function '{function}()' detected at {file}:{line}. Replace with strcpy_s() or snprintf() for bounds checking.",
			FixTemplate:     "snprintf",
		},
		{
			Name:            "unsafe_strcat",
			FunctionNames:   []string{"strcat"},
			Severity:        "high",
			MessageTemplate: "❌ Unsafe function '{function}()' detected at {file}:{line}. Replace with strcat_s() or snprintf() for bounds checking.",
			FixTemplate:     "snprintf",
		},
		{
			Name:            "unsafe_sprintf",
			FunctionNames:   []string{"sprintf"},
			Severity:        "high",
			MessageTemplate: "❌ Unsafe function '{function}()' detected at {file}:{line}. Replace with snprintf() for bounds checking.",
			FixTemplate:     "snprintf",
		},
		{
			Name:            "unsafe_scanf",
			FunctionNames:   []string{"scanf"},
			Severity:        "high",
			MessageTemplate: "❌ Unsafe function '{function}()' detected at {file}:{line}. Use fgets() + sscanf() or add width specifiers.",
			FixTemplate:     "fgets",
		},
		{
			Name:            "unsafe_strtok",
			FunctionNames:   []string{"strtok"},
			Severity:        "high",
			MessageTemplate: "❌ Unsafe function '{function}()' detected at {file}:{line}. Replace with strtok_s() or strtok_r() for thread safety.",
			FixTemplate:     "strtok_r",
		},
	}
}

// CertificateRules flag certificate material worth reviewing.
func CertificateRules() []PatternRule {
	return []PatternRule{
		{
			Name:            "pem_certificate",
			Pattern:         `-----BEGIN CERTIFICATE-----`,
			Severity:        "info",
			MessageTemplate: "ℹ️  PEM certificate block detected. Verify certificate validity and key strength.",
			CaseSensitive:   true,
		},
		{
			Name:            "self_signed_cert",
			Pattern:         `self.?signed|self_signed`,
			Severity:        "info",
			MessageTemplate: "ℹ️  Self-signed certificate detected. Ensure this is intentional and only used for development/testing.",
		},
	}
}

// SecurityScanner combines all built-in security detectors.
type SecurityScanner struct {
	credentials *PatternDetector
	crypto      *PatternDetector
	certs       *PatternDetector
	cFunctions  *FunctionCallDetector
}

func NewSecurityScanner() (*SecurityScanner, error) {
	credentials, err := NewPatternDetector(HardcodedCredentialRules())
	if err != nil {
		return nil, err
	}
	crypto, err := NewPatternDetector(InsecureCryptoRules())
	if err != nil {
		return nil, err
	}
	certs, err := NewPatternDetector(CertificateRules())
	if err != nil {
		return nil, err
	}
	return &SecurityScanner{
		credentials: credentials,
		crypto:      crypto,
		certs:       certs,
		cFunctions:  NewFunctionCallDetector(InsecureCFunctionRules()),
	}, nil
}

// ScanFile runs every security detector against one file.
func (s *SecurityScanner) ScanFile(path string) ([]Issue, error) {
	var issues []Issue
	for _, scan := range []func(string) ([]Issue, error){
		s.credentials.ScanFile,
		s.crypto.ScanFile,
		s.certs.ScanFile,
		s.cFunctions.ScanFile,
	} {
		found, err := scan(path)
		if err != nil {
			return nil, err
		}
		issues = append(issues, found...)
	}
	return issues, nil
}

// ApplyFixes applies credential and crypto fixes to one file.
func (s *SecurityScanner) ApplyFixes(path string, issues []Issue, dryRun bool) (int, error) {
	_, applied, err := s.credentials.ApplyFixes(path, issues, dryRun)
	if err != nil {
		return 0, err
	}
	return applied, nil
}
