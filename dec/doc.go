// SPDX-License-Identifier: MIT

// Package dec assembles the operators of discrete exterior calculus over a
// half-edge surface mesh.
//
// Primal k-forms live on vertices (k=0), edges (k=1) and faces (k=2). The
// package builds the three diagonal Hodge stars and the two incidence
// operators that connect them:
//
//	         d0            d1
//	Ω⁰ (|V|) ───▶ Ω¹ (|E|) ───▶ Ω² (|F|)
//	   │⋆0           │⋆1           │⋆2
//	   ▼             ▼             ▼
//	  dual          dual          dual
//
// Builders:
//
//   - Hodge0: |V|×|V|, ⋆0[i][i] = dual area of vertex i.
//   - Hodge1: |E|×|E|, ⋆1[i][i] = (cot α + cot β)/2 + ε.
//   - Hodge2: |F|×|F|, ⋆2[i][i] = 1 / area(face i).
//   - ExteriorDerivative0: |E|×|V| signed edge/vertex incidence.
//   - ExteriorDerivative1: |F|×|E| signed face/edge incidence.
//
// Each builder is a pure single pass over one element family and returns a
// freshly allocated *sparse.Matrix. None depends on another, so BuildAll runs
// them concurrently. Laplacian, Codifferential1 and CheckExactness compose
// the results.
//
// Orientation follows the mesh: the canonical half-edge of an edge points
// from the vertex that receives -1 in d0 to the vertex that receives +1, and
// a face sees +1 in d1 exactly for the edges whose canonical half-edge it
// owns. With that convention d1·d0 = 0 on every consistently oriented mesh.
//
// Regularization: ε (DefaultRegularization, 1e-8) is added to every ⋆1
// diagonal entry, on degenerate and healthy edges alike, so that ⋆1 stays
// strictly positive when the two opposite cotangents cancel. It is an
// absolute constant and does not scale with edge length; WithRegularization
// overrides it.
//
// Degenerate geometry is not validated. A zero-area face yields +Inf in ⋆2
// and collinear corners yield infinite cotangents; such values pass through
// unchanged.
package dec
